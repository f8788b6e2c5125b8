package guard_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errQuoteNotConstructed := errors.New("quote must be created via newQuote")

	type quote struct {
		amount int
		guard  guard.ConstructorGuard
	}

	newQuote := func(amount int) (quote, error) {
		if amount < 0 {
			return quote{}, errors.New("amount cannot be negative")
		}
		return quote{amount: amount, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		q, err := newQuote(4000)

		require.NoError(t, err)
		require.NoError(t, q.guard.Validate(errQuoteNotConstructed))
		assert.Equal(t, 4000, q.amount)
	})

	t.Run("failed_constructor_returns_zero_value_that_fails", func(t *testing.T) {
		q, err := newQuote(-1)

		require.Error(t, err)
		assert.Equal(t, errQuoteNotConstructed, q.guard.Validate(errQuoteNotConstructed))
	})
}
