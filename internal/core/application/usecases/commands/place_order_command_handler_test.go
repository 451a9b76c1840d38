package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func placeOrderCmd(
	t *testing.T,
	restaurantID kernel.UUID,
	lines []commands.OrderLine,
) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), restaurantID,
		lines,
		"1 Main St", "Springfield", "IL", "62701", "",
	)
	require.NoError(t, err)
	return cmd
}

func catalogEntry(t *testing.T, id, restaurantID kernel.UUID, price string, available bool) ports.MenuItem {
	t.Helper()
	return ports.MenuItem{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         "Margherita",
		Price:        testMoney(t, price),
		IsAvailable:  available,
	}
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	line, err := commands.NewOrderLine(menuItemID, 2)
	require.NoError(t, err)
	cmd := placeOrderCmd(t, restaurantID, []commands.OrderLine{line})

	catalog := new(MockMenuCatalog)
	catalog.On("GetItems", ctx, []kernel.UUID{menuItemID}).
		Return(map[kernel.UUID]ports.MenuItem{
			menuItemID: catalogEntry(t, menuItemID, restaurantID, "12.50", true),
		}, nil).
		Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, catalog)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// Placed order snapshots the catalog price: 2 x 12.50
	added := orderRepo.Calls[0].Arguments[1].(*order.Order)
	assert.Equal(t, order.StatusPending, added.Status())
	assert.Equal(t, "25.00", added.TotalAmount().String())

	catalog.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{}

	factory := new(MockOrderUoWFactory)
	handler := commands.NewPlaceOrderCommandHandler(factory, new(MockMenuCatalog))
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_MenuItemNotFound(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	line, err := commands.NewOrderLine(menuItemID, 1)
	require.NoError(t, err)
	cmd := placeOrderCmd(t, restaurantID, []commands.OrderLine{line})

	catalog := new(MockMenuCatalog)
	catalog.On("GetItems", ctx, []kernel.UUID{menuItemID}).
		Return(map[kernel.UUID]ports.MenuItem{}, nil).
		Once()

	factory := new(MockOrderUoWFactory)
	handler := commands.NewPlaceOrderCommandHandler(factory, catalog)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMenuItemNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_MenuItemUnavailable(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	line, err := commands.NewOrderLine(menuItemID, 1)
	require.NoError(t, err)
	cmd := placeOrderCmd(t, restaurantID, []commands.OrderLine{line})

	catalog := new(MockMenuCatalog)
	catalog.On("GetItems", ctx, []kernel.UUID{menuItemID}).
		Return(map[kernel.UUID]ports.MenuItem{
			menuItemID: catalogEntry(t, menuItemID, restaurantID, "12.50", false),
		}, nil).
		Once()

	factory := new(MockOrderUoWFactory)
	handler := commands.NewPlaceOrderCommandHandler(factory, catalog)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMenuItemUnavailable)
}

func TestPlaceOrderCommandHandler_Handle_MenuItemWrongRestaurant(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	otherRestaurantID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	line, err := commands.NewOrderLine(menuItemID, 1)
	require.NoError(t, err)
	cmd := placeOrderCmd(t, restaurantID, []commands.OrderLine{line})

	catalog := new(MockMenuCatalog)
	catalog.On("GetItems", ctx, []kernel.UUID{menuItemID}).
		Return(map[kernel.UUID]ports.MenuItem{
			menuItemID: catalogEntry(t, menuItemID, otherRestaurantID, "12.50", true),
		}, nil).
		Once()

	factory := new(MockOrderUoWFactory)
	handler := commands.NewPlaceOrderCommandHandler(factory, catalog)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMenuItemWrongRestaurant)
}
