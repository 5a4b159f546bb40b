package http

import (
	"errors"
	"net/http"

	"mealtrack/internal/core/application/usecases/commands"
	"mealtrack/internal/core/application/usecases/queries"
	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/core/domain/model/order"
	"mealtrack/internal/generated/servers"
	"mealtrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ConnectionProbe reports the simulated connection state shown on the
// tracking screen.
type ConnectionProbe interface {
	Connected() bool
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler             commands.CreateOrderCommandHandler
	advanceOrderHandler            commands.AdvanceOrderCommandHandler
	cancelOrderHandler             commands.CancelOrderCommandHandler
	setActiveOrderHandler          commands.SetActiveOrderCommandHandler
	acknowledgeNotificationHandler commands.AcknowledgeNotificationCommandHandler
	clearNotificationsHandler      commands.ClearNotificationsCommandHandler

	// Query handlers
	getOrdersHandler        queries.GetOrdersQueryHandler
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler
	getNotificationsHandler queries.GetNotificationsQueryHandler

	connectionProbe ConnectionProbe
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	setActiveOrderHandler commands.SetActiveOrderCommandHandler,
	acknowledgeNotificationHandler commands.AcknowledgeNotificationCommandHandler,
	clearNotificationsHandler commands.ClearNotificationsCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
	connectionProbe ConnectionProbe,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		advanceOrderHandler:            advanceOrderHandler,
		cancelOrderHandler:             cancelOrderHandler,
		setActiveOrderHandler:          setActiveOrderHandler,
		acknowledgeNotificationHandler: acknowledgeNotificationHandler,
		clearNotificationsHandler:      clearNotificationsHandler,
		getOrdersHandler:               getOrdersHandler,
		getOrderTrackingHandler:        getOrderTrackingHandler,
		getNotificationsHandler:        getNotificationsHandler,
		connectionProbe:                connectionProbe,
	}
}

// GetOrders handles GET /api/v1/orders - retrieves all orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, row := range orders {
		response[i] = servers.OrderSummary{
			Id:                    row.ID.Bytes(),
			Status:                row.Status.String(),
			StatusMessage:         row.StatusMessage,
			Progress:              row.Progress,
			Color:                 row.Color,
			TotalAmount:           row.TotalAmount,
			CreatedAt:             row.CreatedAt,
			EstimatedDeliveryTime: row.EstimatedDeliveryTime,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]order.Item, 0, len(newOrder.Items))
	for _, entry := range newOrder.Items {
		customization := ""
		if entry.Customization != nil {
			customization = *entry.Customization
		}

		item, err := order.NewItem(entry.Name, entry.Quantity, entry.UnitPrice, customization)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order item: " + err.Error(),
			})
		}
		items = append(items, item)
	}

	point, err := kernel.NewGeoPoint(newOrder.Address.Latitude, newOrder.Address.Longitude)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery coordinates: " + err.Error(),
		})
	}

	address, err := order.NewAddress(
		newOrder.Address.Street, newOrder.Address.City,
		newOrder.Address.State, newOrder.Address.Zip, point)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery address: " + err.Error(),
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, items, newOrder.TotalAmount, address)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetOrderTracking handles GET /api/v1/orders/{orderId} - the full tracking view.
func (s *Server) GetOrderTracking(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	tracking, err := s.getOrderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order tracking",
		})
	}

	response := servers.OrderTracking{
		OrderId:               tracking.OrderID.Bytes(),
		Status:                tracking.Status.String(),
		StatusMessage:         tracking.StatusMessage,
		Progress:              tracking.Progress,
		Color:                 tracking.Color,
		Eta:                   tracking.ETA,
		TotalAmount:           tracking.TotalAmount,
		CreatedAt:             tracking.CreatedAt,
		EstimatedDeliveryTime: tracking.EstimatedDeliveryTime,
		Updates:               toUpdateResponses(tracking.Updates),
	}
	if tracking.Driver != nil {
		response.Driver = &servers.Driver{
			Name:    tracking.Driver.Name,
			Phone:   tracking.Driver.Phone,
			Vehicle: tracking.Driver.Vehicle,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance.
// Terminal and unknown orders are skipped silently, so the response is 204
// either way.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	if handleErr := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to advance order",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to cancel order",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetActiveOrder handles PUT /api/v1/tracking/active - selects the order the
// movement simulator follows. An unknown order clears the selection.
func (s *Server) SetActiveOrder(ctx echo.Context) error {
	var activeOrder servers.ActiveOrder
	if err := ctx.Bind(&activeOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(activeOrder.OrderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	cmd, err := commands.NewSetActiveOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	if handleErr := s.setActiveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to select active order",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetConnectionStatus handles GET /api/v1/tracking/connection.
func (s *Server) GetConnectionStatus(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.ConnectionStatus{
		Connected: s.connectionProbe.Connected(),
	})
}

// GetNotifications handles GET /api/v1/notifications - reads the feed,
// most recent first.
func (s *Server) GetNotifications(ctx echo.Context, params servers.GetNotificationsParams) error {
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	entries, err := s.getNotificationsHandler.Handle(
		ctx.Request().Context(), queries.NewGetNotificationsQuery(limit))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve notifications",
		})
	}

	return ctx.JSON(http.StatusOK, toUpdateResponses(entries))
}

// ClearNotifications handles DELETE /api/v1/notifications.
func (s *Server) ClearNotifications(ctx echo.Context) error {
	cmd, err := commands.NewClearNotificationsCommand()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to clear notifications",
		})
	}

	if handleErr := s.clearNotificationsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to clear notifications",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcknowledgeNotification handles DELETE /api/v1/notifications/{updateId}.
// Dismissing an entry that is already gone still succeeds.
func (s *Server) AcknowledgeNotification(ctx echo.Context, updateId openapi_types.UUID) error {
	updateID, err := kernel.UUIDFromBytes(updateId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid notification identifier",
		})
	}

	cmd, err := commands.NewAcknowledgeNotificationCommand(updateID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid notification identifier",
		})
	}

	if handleErr := s.acknowledgeNotificationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to dismiss notification",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toUpdateResponses(entries []queries.TrackingUpdateResponse) []servers.OrderUpdate {
	response := make([]servers.OrderUpdate, len(entries))
	for i, entry := range entries {
		update := servers.OrderUpdate{
			Id:               entry.ID.Bytes(),
			Status:           entry.Status.String(),
			Message:          entry.Message,
			Timestamp:        entry.Timestamp,
			EstimatedMinutes: entry.EstimatedMinutes,
		}
		if entry.Location != nil {
			update.Location = &servers.Location{
				Latitude:   entry.Location.Latitude,
				Longitude:  entry.Location.Longitude,
				Address:    entry.Location.Address,
				RecordedAt: entry.Location.RecordedAt,
			}
		}
		response[i] = update
	}
	return response
}
