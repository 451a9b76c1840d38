package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// MenuItem is the catalog view of a dish as seen by order placement. Prices
// are read from here and snapshotted onto order items, so later menu edits do
// not change already placed orders.
type MenuItem struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Price        order.Money
	IsAvailable  bool
}

// MenuCatalog defines the read-only contract to the restaurant menu data
// consulted during order placement.
type MenuCatalog interface {
	// GetItems retrieves the catalog entries for the given menu item IDs.
	// IDs without a catalog entry are simply absent from the result.
	GetItems(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]MenuItem, error)
}
