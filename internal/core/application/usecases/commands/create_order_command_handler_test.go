package commands_test

import (
	"errors"
	"testing"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("New", order.Processing)
	created, _ := order.NewOrder(2, "New", order.Processing)

	repo := new(MockOrderRepository)
	repo.On("Create", ctx, "New", order.Processing).Return(created, nil).Once()

	h := commands.NewCreateOrderCommandHandler(repo)
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, created, got)
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	repo := new(MockOrderRepository)

	h := commands.NewCreateOrderCommandHandler(repo)
	got, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	assert.Nil(t, got)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("New", order.InTransit)

	repo := new(MockOrderRepository)
	repo.On("Create", ctx, "New", order.InTransit).Return(nil, errors.New("create error")).Once()

	h := commands.NewCreateOrderCommandHandler(repo)
	got, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "create error")
	assert.Nil(t, got)
	repo.AssertExpectations(t)
}
