// Package http exposes the order and agent operations over a JSON REST API.
package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler           commands.PlaceOrderCommandHandler
	acceptOrderHandler          commands.AcceptOrderCommandHandler
	rejectOrderHandler          commands.RejectOrderCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	updatePreparationHandler    commands.UpdatePreparationCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	createAgentHandler          commands.CreateAgentCommandHandler
	updateAgentHandler          commands.UpdateAgentCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler
	getAgentOrdersHandler      queries.GetAgentOrdersQueryHandler
	getAllAgentsHandler        queries.GetAllAgentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updatePreparationHandler commands.UpdatePreparationCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	createAgentHandler commands.CreateAgentCommandHandler,
	updateAgentHandler commands.UpdateAgentCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
	getAgentOrdersHandler queries.GetAgentOrdersQueryHandler,
	getAllAgentsHandler queries.GetAllAgentsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		acceptOrderHandler:          acceptOrderHandler,
		rejectOrderHandler:          rejectOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		updatePreparationHandler:    updatePreparationHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		createAgentHandler:          createAgentHandler,
		updateAgentHandler:          updateAgentHandler,
		getOrderHandler:             getOrderHandler,
		getRestaurantOrdersHandler:  getRestaurantOrdersHandler,
		getAgentOrdersHandler:       getAgentOrdersHandler,
		getAllAgentsHandler:         getAllAgentsHandler,
	}
}

// RegisterRoutes binds every operation under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/accept", s.AcceptOrder)
	api.POST("/orders/:orderID/reject", s.RejectOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/preparation", s.UpdatePreparation)
	api.POST("/orders/:orderID/delivery-status", s.UpdateDeliveryStatus)

	api.GET("/restaurants/:restaurantID/orders", s.GetRestaurantOrders)

	api.POST("/agents", s.CreateAgent)
	api.PATCH("/agents/:agentID", s.UpdateAgent)
	api.GET("/agents", s.GetAgents)
	api.GET("/agents/:agentID/orders", s.GetAgentOrders)
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id")
	}
	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant_id")
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, idErr := kernel.UUIDFromString(item.MenuItemID)
		if idErr != nil {
			return badRequest(ctx, "Invalid menu_item_id")
		}
		line, lineErr := commands.NewOrderLine(menuItemID, item.Quantity)
		if lineErr != nil {
			return badRequest(ctx, lineErr.Error())
		}
		lines = append(lines, line)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID, userID, restaurantID, lines,
		req.Street, req.City, req.State, req.PostalCode, req.Instructions)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderID - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// AcceptOrder handles POST /api/v1/orders/:orderID/accept - the restaurant
// accepts a pending order, triggering agent assignment.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req RestaurantActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant_id")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, restaurantID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:orderID/reject - the restaurant
// declines a pending order.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req RestaurantActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant_id")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, restaurantID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel - the customer
// withdraws their order before preparation starts.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, userID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePreparation handles POST /api/v1/orders/:orderID/preparation - the
// restaurant reports kitchen progress (preparing, ready_for_pickup).
func (s *Server) UpdatePreparation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req UpdatePreparationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant_id")
	}

	cmd, err := commands.NewUpdatePreparationCommand(orderID, restaurantID, order.Status(req.Status))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.updatePreparationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles POST /api/v1/orders/:orderID/delivery-status -
// the bound agent reports delivery progress (picked_up, on_the_way, delivered).
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req UpdateDeliveryStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return badRequest(ctx, "Invalid agent_id")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(orderID, agentID, order.Status(req.Status))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRestaurantOrders handles GET /api/v1/restaurants/:restaurantID/orders -
// lists a restaurant's orders, optionally filtered by ?status=.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantID"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status := order.Status(raw)
		statusFilter = &status
	}

	query, err := queries.NewGetRestaurantOrdersQuery(restaurantID, statusFilter)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:          o.ID.String(),
			UserID:      o.UserID.String(),
			Status:      o.Status.String(),
			TotalAmount: o.TotalAmount.StringFixed(2),
			PlacedAt:    o.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAgent handles POST /api/v1/agents - registers a delivery agent.
func (s *Server) CreateAgent(ctx echo.Context) error {
	var req CreateAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agentID := kernel.NewUUID()
	cmd, err := commands.NewCreateAgentCommand(
		agentID, req.Name, req.Phone,
		agent.VehicleType(req.VehicleType), req.Latitude, req.Longitude)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.createAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateAgentResponse{ID: agentID.String()})
}

// UpdateAgent handles PATCH /api/v1/agents/:agentID - moves an agent or flips
// its availability.
func (s *Server) UpdateAgent(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("agentID"))
	if err != nil {
		return badRequest(ctx, "Invalid agent ID")
	}

	var req UpdateAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateAgentCommand(agentID, commands.UpdateAgentPatch{
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.updateAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAgents handles GET /api/v1/agents - lists the delivery fleet.
func (s *Server) GetAgents(ctx echo.Context) error {
	agents, err := s.getAllAgentsHandler.Handle(ctx.Request().Context(), queries.NewGetAllAgentsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Agent, len(agents))
	for i, a := range agents {
		response[i] = Agent{
			ID:          a.ID.String(),
			Name:        a.Name,
			Phone:       a.Phone,
			VehicleType: a.VehicleType.String(),
			Latitude:    a.Location.Latitude(),
			Longitude:   a.Location.Longitude(),
			IsAvailable: a.IsAvailable,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAgentOrders handles GET /api/v1/agents/:agentID/orders - lists an
// agent's assignments; ?active=true narrows to in-flight orders.
func (s *Server) GetAgentOrders(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("agentID"))
	if err != nil {
		return badRequest(ctx, "Invalid agent ID")
	}

	activeOnly := ctx.QueryParam("active") == "true"

	query, err := queries.NewGetAgentOrdersQuery(agentID, activeOnly)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getAgentOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AgentOrder, len(orders))
	for i, o := range orders {
		response[i] = AgentOrder{
			ID:           o.ID.String(),
			RestaurantID: o.RestaurantID.String(),
			Status:       o.Status.String(),
			Street:       o.Street,
			City:         o.City,
			PlacedAt:     o.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
