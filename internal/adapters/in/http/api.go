package http

import (
	"errors"
	"net/http"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineRequest is one requested line of a new order.
type OrderLineRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	UserID       string             `json:"user_id"`
	RestaurantID string             `json:"restaurant_id"`
	Items        []OrderLineRequest `json:"items"`
	Street       string             `json:"street"`
	City         string             `json:"city"`
	State        string             `json:"state"`
	PostalCode   string             `json:"postal_code"`
	Instructions string             `json:"instructions"`
}

// RestaurantActionRequest identifies the restaurant acting on an order.
type RestaurantActionRequest struct {
	RestaurantID string `json:"restaurant_id"`
}

// CancelOrderRequest identifies the customer cancelling an order.
type CancelOrderRequest struct {
	UserID string `json:"user_id"`
}

// UpdatePreparationRequest moves an order through the kitchen stages.
type UpdatePreparationRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Status       string `json:"status"`
}

// UpdateDeliveryStatusRequest moves an order through the delivery stages.
type UpdateDeliveryStatusRequest struct {
	AgentID string `json:"agent_id"`
	Status  string `json:"status"`
}

// CreateAgentRequest is the body of POST /api/v1/agents.
type CreateAgentRequest struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	VehicleType string  `json:"vehicle_type"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// UpdateAgentRequest is the body of PATCH /api/v1/agents/:agentID.
// Absent fields are left unchanged.
type UpdateAgentRequest struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	IsAvailable *bool    `json:"is_available"`
}

// PlaceOrderResponse returns the identifier of a newly placed order.
type PlaceOrderResponse struct {
	ID string `json:"id"`
}

// CreateAgentResponse returns the identifier of a newly registered agent.
type CreateAgentResponse struct {
	ID string `json:"id"`
}

// OrderItem is one order line in the order read model.
type OrderItem struct {
	ID         string `json:"id"`
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	TotalPrice string `json:"total_price"`
}

// Order is the full order read model.
type Order struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	RestaurantID string      `json:"restaurant_id"`
	AgentID      *string     `json:"agent_id,omitempty"`
	Status       string      `json:"status"`
	TotalAmount  string      `json:"total_amount"`
	Street       string      `json:"street"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	PostalCode   string      `json:"postal_code"`
	Instructions string      `json:"instructions,omitempty"`
	Items        []OrderItem `json:"items"`
	PlacedAt     time.Time   `json:"placed_at"`
	AcceptedAt   *time.Time  `json:"accepted_at,omitempty"`
	DeliveredAt  *time.Time  `json:"delivered_at,omitempty"`
}

// OrderSummary is one row of a restaurant's order listing.
type OrderSummary struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Status      string    `json:"status"`
	TotalAmount string    `json:"total_amount"`
	PlacedAt    time.Time `json:"placed_at"`
}

// AgentOrder is one row of an agent's assignment listing.
type AgentOrder struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Status       string    `json:"status"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	PlacedAt     time.Time `json:"placed_at"`
}

// Agent is one row of the fleet listing.
type Agent struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	VehicleType string  `json:"vehicle_type"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsAvailable bool    `json:"is_available"`
}

// toOrderResponse maps the order read model to its JSON shape.
func toOrderResponse(resp queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItem{
			ID:         item.ID.String(),
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.StringFixed(2),
			TotalPrice: item.TotalPrice.StringFixed(2),
		}
	}

	out := Order{
		ID:           resp.ID.String(),
		UserID:       resp.UserID.String(),
		RestaurantID: resp.RestaurantID.String(),
		Status:       resp.Status.String(),
		TotalAmount:  resp.TotalAmount.StringFixed(2),
		Street:       resp.Street,
		City:         resp.City,
		State:        resp.State,
		PostalCode:   resp.PostalCode,
		Instructions: resp.Instructions,
		Items:        items,
		PlacedAt:     resp.PlacedAt,
		AcceptedAt:   resp.AcceptedAt,
		DeliveredAt:  resp.DeliveredAt,
	}
	if resp.AgentID != nil {
		agentID := resp.AgentID.String()
		out.AgentID = &agentID
	}
	return out
}

// respondError translates domain and application errors to HTTP statuses:
// not found 404, forbidden 403, illegal transition and concurrent
// modification 409, rejected input 422, anything unexpected 500.
func respondError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, commands.ErrActorForbidden):
		status = http.StatusForbidden
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, commands.ErrAgentHasActiveAssignment):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrMenuItemNotFound),
		errors.Is(err, commands.ErrMenuItemUnavailable),
		errors.Is(err, commands.ErrMenuItemWrongRestaurant):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}

// badRequest reports a malformed request body or path parameter.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
