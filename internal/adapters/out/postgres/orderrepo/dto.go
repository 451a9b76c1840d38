// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column carries the optimistic concurrency token; updates must
// match both id and the expected version.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;index"`
	AgentID      *uuid.UUID      `gorm:"type:uuid;index"`
	Status       string          `gorm:"type:varchar(32);index"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Address      AddressDTO      `gorm:"embedded"`
	Instructions string
	Items        []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	PlacedAt     time.Time `gorm:"index"`
	AcceptedAt   *time.Time
	DeliveredAt  *time.Time
	Version      int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
// Coordinates are optional; addresses without geocoding store NULLs.
type AddressDTO struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Latitude   *float64
	Longitude  *float64
}

// ItemDTO represents one order line item. Prices are the snapshot taken at
// placement time and never change afterwards.
type ItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID       `gorm:"type:uuid"`
	Quantity   int
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := aggregate.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Decimal(),
			TotalPrice: item.TotalPrice().Decimal(),
		})
	}

	address := aggregate.Address()
	addressDTO := AddressDTO{
		Street:     address.Street(),
		City:       address.City(),
		State:      address.State(),
		PostalCode: address.PostalCode(),
	}
	if location := address.Location(); location != nil {
		latitude := location.Latitude()
		longitude := location.Longitude()
		addressDTO.Latitude = &latitude
		addressDTO.Longitude = &longitude
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		AgentID:      agentID,
		Status:       aggregate.Status().String(),
		TotalAmount:  aggregate.TotalAmount().Decimal(),
		Address:      addressDTO,
		Instructions: aggregate.Instructions(),
		Items:        items,
		PlacedAt:     aggregate.PlacedAt(),
		AcceptedAt:   aggregate.AcceptedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		Version:      aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the agent binding and the
// stored price snapshot using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	address, err := addressToDomain(dto.Address)
	if err != nil {
		return nil, err
	}

	totalAmount, err := order.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		userID,
		restaurantID,
		agentID,
		order.Status(dto.Status),
		totalAmount,
		address,
		dto.Instructions,
		items,
		dto.PlacedAt,
		dto.AcceptedAt,
		dto.DeliveredAt,
		dto.Version,
	)
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	if dto.Latitude != nil && dto.Longitude != nil {
		location, err := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return kernel.Address{}, err
		}
		return kernel.NewAddressWithLocation(dto.Street, dto.City, dto.State, dto.PostalCode, location)
	}

	return kernel.NewAddress(dto.Street, dto.City, dto.State, dto.PostalCode)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := order.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	totalPrice, err := order.NewMoney(dto.TotalPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(id, menuItemID, dto.Quantity, unitPrice, totalPrice)
}
