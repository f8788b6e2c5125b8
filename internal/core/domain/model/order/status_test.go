package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "pending"},
		{order.InProgress, "in_progress"},
		{order.Delivered, "delivered"},
		{order.Cancelled, "cancelled"},
		{order.Unknown, "unknown"},
		{order.Status(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every valid status", func(t *testing.T) {
		for _, s := range order.Statuses() {
			parsed, err := order.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := order.ParseStatus("en_attente")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject the unknown status name", func(t *testing.T) {
		_, err := order.ParseStatus("unknown")

		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.Cancelled.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_MarkReady(t *testing.T) {
	t.Run("should move pending and in-progress orders to in_progress", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.InProgress} {
			next, err := s.MarkReady()
			require.NoError(t, err)
			assert.Equal(t, order.InProgress, next)
		}
	})

	t.Run("should reject final statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Delivered, order.Cancelled, order.Unknown} {
			_, err := s.MarkReady()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not a valid status to mark ready")
		}
	})
}

func TestStatus_IsFinal(t *testing.T) {
	assert.False(t, order.Pending.IsFinal())
	assert.False(t, order.InProgress.IsFinal())
	assert.True(t, order.Delivered.IsFinal())
	assert.True(t, order.Cancelled.IsFinal())
}
