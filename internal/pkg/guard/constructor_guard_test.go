package guard_test

import (
	"errors"
	"testing"

	"ordertracker/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuardUsageExample(t *testing.T) {
	type query struct {
		id    int64
		guard guard.ConstructorGuard
	}

	errQueryNotConstructed := errors.New("query must be created via newQuery")

	newQuery := func(id int64) query {
		return query{id: id, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		q := newQuery(2)

		require.NoError(t, q.guard.Validate(errQueryNotConstructed))
		assert.Equal(t, int64(2), q.id)
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var q query

		assert.Equal(t, errQueryNotConstructed, q.guard.Validate(errQueryNotConstructed))
	})
}
