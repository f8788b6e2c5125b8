package auth_test

import (
	"errors"
	"testing"

	"marketplace/internal/auth"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func denialReason(t *testing.T, err error) string {
	t.Helper()
	var denied *errs.AccessDeniedError
	require.True(t, errors.As(err, &denied), "expected AccessDeniedError, got %v", err)
	return denied.Reason
}

func TestPrincipal_RequireSupplier(t *testing.T) {
	_, err := auth.Principal{UserID: 1}.RequireSupplier()
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	assert.Equal(t, auth.ReasonSupplierProfileRequired, denialReason(t, err))

	pending := auth.Principal{UserID: 1, Supplier: &auth.SupplierCapability{SupplierID: 7}}
	_, err = pending.RequireSupplier()
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	assert.Equal(t, auth.ReasonSupplierNotApproved, denialReason(t, err))

	approved := auth.Principal{UserID: 1, Supplier: &auth.SupplierCapability{SupplierID: 7, Approved: true}}
	capability, err := approved.RequireSupplier()
	require.NoError(t, err)
	assert.Equal(t, int64(7), capability.SupplierID)
}

func TestPrincipal_RequireStaff(t *testing.T) {
	require.NoError(t, auth.Principal{UserID: 1, IsStaff: true}.RequireStaff())

	err := auth.Principal{UserID: 2}.RequireStaff()
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	assert.Equal(t, auth.ReasonStaffRequired, denialReason(t, err))
}

func TestPrincipal_DisplayName(t *testing.T) {
	assert.Equal(t, "Alice Doe", auth.Principal{Username: "alice", FullName: "Alice Doe"}.DisplayName())
	assert.Equal(t, "alice", auth.Principal{Username: "alice"}.DisplayName())
}
