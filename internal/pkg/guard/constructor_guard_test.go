package guard_test

import (
	"errors"
	"testing"

	"haul/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
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

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type money struct {
		amount int
		guard  guard.ConstructorGuard
	}

	errMoneyNotConstructed := errors.New("Money must be created via NewMoney")

	newMoney := func(amount int) (money, error) {
		if amount < 0 {
			return money{}, errors.New("amount cannot be negative")
		}
		return money{amount: amount, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		m, err := newMoney(100)

		require.NoError(t, err)
		require.NoError(t, m.guard.Validate(errMoneyNotConstructed))
		assert.Equal(t, 100, m.amount)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var m money

		err := m.guard.Validate(errMoneyNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errMoneyNotConstructed, err)
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for i := 0; i < 100; i++ {
		go func() {
			for j := 0; j < 1000; j++ {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for i := 0; i < 100; i++ {
		<-done
	}
}
