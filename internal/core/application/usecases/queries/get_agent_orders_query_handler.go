package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentOrdersQueryHandler retrieves an agent's assigned orders from the
// database.
type GetAgentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentOrdersQueryHandler creates a handler for agent order list
// queries. Requires a GORM database connection for query execution.
func NewGetAgentOrdersQueryHandler(db *gorm.DB) GetAgentOrdersQueryHandler {
	return GetAgentOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve an agent's orders, newest first.
// With ActiveOnly only undelivered assignments are returned.
func (h GetAgentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAgentOrdersQuery,
) ([]GetAgentOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			restaurant_id,
			status,
			street,
			city,
			placed_at
		FROM orders
		WHERE agent_id = ?
	`
	args := []any{query.AgentID().Bytes()}

	if query.ActiveOnly() {
		sqlQuery += ` AND status != ?`
		args = append(args, order.StatusDelivered.String())
	}
	sqlQuery += ` ORDER BY placed_at DESC`

	orders := make([]GetAgentOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAgentOrdersQueryResponse
		var id, restaurantID uuid.UUID
		var status string

		err = rows.Scan(
			&id,
			&restaurantID,
			&status,
			&resp.Street,
			&resp.City,
			&resp.PlacedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		resp.Status = order.Status(status)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
