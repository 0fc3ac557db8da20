package http

import (
	"errors"
	"net/http"
	"strconv"

	"waterdelivery/internal/core/application/usecases/commands"
	"waterdelivery/internal/core/application/usecases/queries"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/domain/services"
	"waterdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// DefaultStaleHours is the lookback applied to the stale-order listing
// when the request does not name one.
const DefaultStaleHours = 2

// Server exposes the order lifecycle and slot allocation over HTTP.
// It coordinates between echo handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	editOrderHandler       commands.EditOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler

	// Query handlers
	listNewOrdersHandler   queries.ListNewOrdersQueryHandler
	listStaleOrdersHandler queries.ListStaleOrdersQueryHandler
	getUserOrdersHandler   queries.GetUserOrdersQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	findSlotHandler        queries.FindSlotQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	listNewOrdersHandler queries.ListNewOrdersQueryHandler,
	listStaleOrdersHandler queries.ListStaleOrdersQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	findSlotHandler queries.FindSlotQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		editOrderHandler:       editOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		listNewOrdersHandler:   listNewOrdersHandler,
		listStaleOrdersHandler: listStaleOrdersHandler,
		getUserOrdersHandler:   getUserOrdersHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		findSlotHandler:        findSlotHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.PATCH("/orders/:id", s.EditOrder)
	api.POST("/orders/:id/confirm", s.transition(order.Confirmed))
	api.POST("/orders/:id/cancel", s.transition(order.Cancelled))
	api.POST("/orders/:id/reschedule", s.transition(order.Rescheduled))
	api.POST("/orders/:id/deliver", s.transition(order.InDelivery))
	api.POST("/orders/:id/complete", s.transition(order.Completed))
	api.GET("/orders/new", s.GetNewOrders)
	api.GET("/orders/stale", s.GetStaleOrders)
	api.GET("/orders/:id/history", s.GetOrderHistory)
	api.GET("/users/:id/orders", s.GetUserOrders)
	api.GET("/slots", s.FindSlot)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order and books
// its delivery slot.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id: "+err.Error())
	}
	addressID, err := kernel.UUIDFromString(req.AddressID)
	if err != nil {
		return badRequest(ctx, "Invalid address_id: "+err.Error())
	}

	preferredDate := kernel.Day{}
	if req.PreferredDate != "" {
		preferredDate, err = kernel.DayFromString(req.PreferredDate)
		if err != nil {
			return badRequest(ctx, "Invalid preferred_date: "+err.Error())
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, userID, addressID, req.QtyA, req.QtyB, req.Comment, preferredDate,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	var slot services.Slot
	err = withConflictRetry(func() error {
		var handleErr error
		slot, handleErr = s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
		return handleErr
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:        orderID.String(),
		DeliveryDate:   slot.Date.String(),
		ZoneRemaining:  slot.ZoneRemaining,
		TotalRemaining: slot.TotalRemaining,
	})
}

// EditOrder handles PATCH /api/v1/orders/:id - changes quantities or the
// comment of an unconfirmed order.
func (s *Server) EditOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req EditOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewEditOrderCommand(orderID, req.QtyA, req.QtyB, req.Comment)
	if err != nil {
		return badRequest(ctx, "Invalid edit data: "+err.Error())
	}

	err = withConflictRetry(func() error {
		return s.editOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// transition builds the handler for one lifecycle transition endpoint.
func (s *Server) transition(target order.Status) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		orderID, err := kernel.UUIDFromString(ctx.Param("id"))
		if err != nil {
			return badRequest(ctx, "Invalid order id: "+err.Error())
		}

		var req TransitionRequest
		if err = ctx.Bind(&req); err != nil {
			return badRequest(ctx, "Invalid request body")
		}

		var operatorID *kernel.UUID
		if req.OperatorID != nil {
			id, idErr := kernel.UUIDFromString(*req.OperatorID)
			if idErr != nil {
				return badRequest(ctx, "Invalid operator_id: "+idErr.Error())
			}
			operatorID = &id
		}

		rescheduleDate := kernel.Day{}
		if req.Date != "" {
			rescheduleDate, err = kernel.DayFromString(req.Date)
			if err != nil {
				return badRequest(ctx, "Invalid date: "+err.Error())
			}
		}

		cmd, err := commands.NewTransitionOrderCommand(
			orderID, target, operatorID, req.Comment, rescheduleDate,
		)
		if err != nil {
			return badRequest(ctx, "Invalid transition data: "+err.Error())
		}

		err = withConflictRetry(func() error {
			return s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
		})
		if err != nil {
			return errorResponse(ctx, err)
		}

		return ctx.NoContent(http.StatusNoContent)
	}
}

// GetNewOrders handles GET /api/v1/orders/new - the operator worklist of
// orders awaiting confirmation.
func (s *Server) GetNewOrders(ctx echo.Context) error {
	orders, err := s.listNewOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewListNewOrdersQuery(),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderJSONList(orders))
}

// GetStaleOrders handles GET /api/v1/orders/stale?hours=N.
func (s *Server) GetStaleOrders(ctx echo.Context) error {
	hours := DefaultStaleHours
	if raw := ctx.QueryParam("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid hours: "+err.Error())
		}
		hours = parsed
	}

	query, err := queries.NewListStaleOrdersQuery(hours)
	if err != nil {
		return badRequest(ctx, "Invalid hours: "+err.Error())
	}

	orders, err := s.listStaleOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderJSONList(orders))
}

// GetOrderHistory handles GET /api/v1/orders/:id/history - the append-only
// audit trail of one order, oldest entry first.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	entries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]LogEntryJSON, len(entries))
	for i, entry := range entries {
		response[i] = LogEntryJSON{
			ID:         entry.ID,
			OrderID:    entry.OrderID,
			Action:     entry.Action,
			OldStatus:  entry.OldStatus,
			NewStatus:  entry.NewStatus,
			OperatorID: entry.OperatorID,
			Comment:    entry.Comment,
			CreatedAt:  entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUserOrders handles GET /api/v1/users/:id/orders?limit&offset.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	limit, offset := 20, 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return badRequest(ctx, "Invalid limit: "+err.Error())
		}
	}
	if raw := ctx.QueryParam("offset"); raw != "" {
		if offset, err = strconv.Atoi(raw); err != nil {
			return badRequest(ctx, "Invalid offset: "+err.Error())
		}
	}

	query, err := queries.NewGetUserOrdersQuery(userID, limit, offset)
	if err != nil {
		return badRequest(ctx, "Invalid paging: "+err.Error())
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderJSONList(orders))
}

// FindSlot handles GET /api/v1/slots?zone=&qty=&date= - a read-only probe
// of the nearest feasible delivery slot. The answer is advisory; only
// creating an order reserves capacity.
func (s *Server) FindSlot(ctx echo.Context) error {
	qty := 1
	if raw := ctx.QueryParam("qty"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid qty: "+err.Error())
		}
		qty = parsed
	}

	startDate := kernel.Day{}
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := kernel.DayFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid date: "+err.Error())
		}
		startDate = parsed
	}

	query, err := queries.NewFindSlotQuery(ctx.QueryParam("zone"), qty, startDate)
	if err != nil {
		return badRequest(ctx, "Invalid slot query: "+err.Error())
	}

	slot, err := s.findSlotHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SlotJSON{
		Date:           slot.Date,
		ZoneRemaining:  slot.ZoneRemaining,
		TotalRemaining: slot.TotalRemaining,
	})
}

// withConflictRetry runs op and retries it once when the transaction lost
// to a concurrent writer. Anything still conflicting after the retry is
// reported to the caller.
func withConflictRetry(op func() error) error {
	err := op()
	if errors.Is(err, errs.ErrConcurrencyConflict) {
		err = op()
	}
	return err
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps use case errors onto HTTP statuses.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrDuplicateOrder),
		errors.Is(err, order.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrNoSlotAvailable):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Concurrent update, please retry",
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
