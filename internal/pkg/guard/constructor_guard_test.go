package guard_test

import (
	"errors"
	"testing"

	"mealtrack/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates the intended embedding pattern
// for a guarded value object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type LineItem struct {
		name     string
		quantity int
		guard    guard.ConstructorGuard
	}

	var errLineItemNotConstructed = errors.New("LineItem must be created via NewLineItem")

	newLineItem := func(name string, quantity int) (LineItem, error) {
		if name == "" {
			return LineItem{}, errors.New("name is required")
		}
		if quantity <= 0 {
			return LineItem{}, errors.New("quantity must be positive")
		}
		return LineItem{
			name:     name,
			quantity: quantity,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	validateLineItem := func(i LineItem) error {
		return i.guard.Validate(errLineItemNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		item, err := newLineItem("Bowl", 1)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateLineItem(item))
		assert.Equal(t, "Bowl", item.name)
		assert.Equal(t, 1, item.quantity)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		// Given
		var item LineItem // zero value

		// When
		err := validateLineItem(item)

		// Then
		require.Error(t, err)
		assert.Equal(t, errLineItemNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newLineItem("", 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")

		_, err = newLineItem("Bowl", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity must be positive")
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardConcurrency verifies that a guard is safe to validate
// from multiple goroutines.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 1000 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := g // pass by value

		// Then
		require.NoError(t, g.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
