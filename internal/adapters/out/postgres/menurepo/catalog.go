// Package menurepo provides the read-only menu catalog adapter consulted
// during order placement.
package menurepo

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItemDTO represents the database structure for menu catalog entries.
type MenuItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;index"`
	Name         string
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsAvailable  bool
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// GormMenuCatalog implements MenuCatalog using GORM. The catalog is only read
// by this service; menu management belongs to another system.
type GormMenuCatalog struct {
	db *gorm.DB
}

// NewGormMenuCatalog creates a new GORM menu catalog adapter.
func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

// GetItems retrieves the catalog entries for the given menu item IDs.
// IDs without a row are simply absent from the result map.
func (c *GormMenuCatalog) GetItems(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]ports.MenuItem, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := c.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make(map[kernel.UUID]ports.MenuItem, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
		if err != nil {
			return nil, err
		}

		price, err := order.NewMoney(dto.Price)
		if err != nil {
			return nil, err
		}

		items[id] = ports.MenuItem{
			ID:           id,
			RestaurantID: restaurantID,
			Name:         dto.Name,
			Price:        price,
			IsAvailable:  dto.IsAvailable,
		}
	}

	return items, nil
}
