package commands_test

import (
	"testing"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("New", order.Processing)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "New", cmd.Title())
		assert.Equal(t, order.Processing, cmd.Status())
	})

	t.Run("empty title is allowed", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("", order.Delivered)

		require.NoError(t, err)
		assert.Empty(t, cmd.Title())
	})

	t.Run("invalid status", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("New", "BOGUS")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
