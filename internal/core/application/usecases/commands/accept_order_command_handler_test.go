package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptOrderCommandHandler_Handle_SuccessWithAssignment(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	testOrder := pendingOrder(t, restaurantID)
	testAgent := availableAgent(t)

	cmd, err := commands.NewAcceptOrderCommand(testOrder.ID(), restaurantID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForRestaurant", ctx, testOrder.ID(), restaurantID).Return(testOrder, nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		agentRepo.On("GetAllAvailableForReservation", ctx).
			Return([]*agent.DeliveryAgent{testAgent}, nil).
			Once(),
		agentRepo.On("Update", ctx, mock.AnythingOfType("*agent.DeliveryAgent")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		outboxRepo.On("Add", ctx, mock.AnythingOfType("*outbox.Message")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusAccepted, testOrder.Status())
	require.NotNil(t, testOrder.Agent())
	assert.True(t, testOrder.Agent().IsEqual(testAgent.ID()))
	assert.False(t, testAgent.IsAvailable())

	orderRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_NoAgentAvailable(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	testOrder := pendingOrder(t, restaurantID)

	cmd, err := commands.NewAcceptOrderCommand(testOrder.ID(), restaurantID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForRestaurant", ctx, testOrder.ID(), restaurantID).Return(testOrder, nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		agentRepo.On("GetAllAvailableForReservation", ctx).
			Return([]*agent.DeliveryAgent{}, nil).
			Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// Pool exhaustion is not an error: the order stays accepted and queued.
	require.NoError(t, err)
	assert.Equal(t, order.StatusAccepted, testOrder.Status())
	assert.Nil(t, testOrder.Agent())
	outboxRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAcceptOrderCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForRestaurant", ctx, cmd.OrderID(), cmd.RestaurantID()).
			Return(nil, errs.ErrObjectNotFound).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAcceptOrderCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	testOrder := acceptedOrder(t, restaurantID)

	cmd, err := commands.NewAcceptOrderCommand(testOrder.ID(), restaurantID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForRestaurant", ctx, testOrder.ID(), restaurantID).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrIllegalTransition)
}

func TestAcceptOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AcceptOrderCommand{}

	factory := new(MockUoWFactory)
	handler := commands.NewAcceptOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAcceptOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAcceptOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAcceptOrderCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewAcceptOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}
