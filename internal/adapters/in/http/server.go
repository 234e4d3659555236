// Package http exposes the application use cases as a JSON API. Handlers
// translate between wire DTOs and commands or queries; they hold no business
// rules of their own.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

// dateLayout is the calendar date format used on the wire.
const dateLayout = "2006-01-02"

// Commands groups the write-side handlers the server dispatches to.
type Commands struct {
	CreateOrder         commands.CreateOrderCommandHandler
	UpdateOrder         commands.UpdateOrderCommandHandler
	DeleteOrder         commands.DeleteOrderCommandHandler
	UpdateItemChecklist commands.UpdateItemChecklistCommandHandler
	MarkOrderReady      commands.MarkOrderReadyCommandHandler
	MarkOrderDelivered  commands.MarkOrderDeliveredCommandHandler
	CancelOrder         commands.CancelOrderCommandHandler
	AddAdvancePayment   commands.AddAdvancePaymentCommandHandler
	CreateDeliveryNote  commands.CreateDeliveryNoteCommandHandler
	CreateInvoice       commands.CreateInvoiceCommandHandler
	CreateClient        commands.CreateClientCommandHandler
	UpdateClient        commands.UpdateClientCommandHandler
}

// Queries groups the read-side handlers the server dispatches to.
type Queries struct {
	OrdersByDeliveryDate   queries.GetOrdersByDeliveryDateQueryHandler
	Order                  queries.GetOrderQueryHandler
	AllClients             queries.GetAllClientsQueryHandler
	AllEmitters            queries.GetAllEmittersQueryHandler
	ClientAccountStatement queries.GetClientAccountStatementQueryHandler
	DailyCashSummary       queries.GetDailyCashSummaryQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(c Commands, q Queries) *Server {
	return &Server{commands: c, queries: q}
}

// RegisterRoutes binds every endpoint on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PUT("/orders/:id/delivered", s.SetOrderDelivered)
	api.PUT("/orders/:id/ready", s.MarkOrderReady)
	api.PUT("/orders/:id/cancel", s.CancelOrder)
	api.PUT("/orders/items/:itemId/checklist", s.UpdateItemChecklist)
	api.POST("/orders/:id/advance-payments", s.AddAdvancePayment)

	api.POST("/delivery-notes/from-order", s.CreateDeliveryNote)
	api.POST("/invoices/from-order", s.CreateInvoice)

	api.GET("/clients", s.GetClients)
	api.POST("/clients", s.CreateClient)
	api.PUT("/clients/:id", s.UpdateClient)
	api.GET("/clients/:id/account-statement", s.GetClientAccountStatement)

	api.GET("/emitters", s.GetEmitters)

	api.GET("/dashboard/summary", s.GetDashboardSummary)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/v1/orders?date=YYYY-MM-DD - the day's order list.
// Defaults to today when no date is given.
func (s *Server) GetOrders(ctx echo.Context) error {
	date := time.Now().UTC()
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return badRequest(ctx, "Invalid date, expected YYYY-MM-DD")
		}
		date = parsed
	}

	query, err := queries.NewGetOrdersByDeliveryDateQuery(date)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.queries.OrdersByDeliveryDate.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]orderJSON, len(orders))
	for i := range orders {
		response[i] = toOrderJSON(orders[i])
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - one fully evaluated order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.queries.Order.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrderJSON(resp))
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req orderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := buildOrderCommand(orderID, req, commands.NewCreateOrderCommand)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// UpdateOrder handles PUT /api/v1/orders/:id - replaces the order form.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req orderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := buildOrderCommand(orderID, req, commands.NewUpdateOrderCommand)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commands.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to update order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commands.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to delete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetOrderDelivered handles PUT /api/v1/orders/:id/delivered - toggles the
// delivered flag to the requested value.
func (s *Server) SetOrderDelivered(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req deliveredRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkOrderDeliveredCommand(orderID, req.Delivered)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commands.MarkOrderDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to update delivered flag")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderReady handles PUT /api/v1/orders/:id/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commands.MarkOrderReady.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to mark order ready")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateItemChecklist handles PUT /api/v1/orders/items/:itemId/checklist.
func (s *Server) UpdateItemChecklist(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var req checklistRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateItemChecklistCommand(itemID, req.Picked, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commands.UpdateItemChecklist.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to update item checklist")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddAdvancePayment handles POST /api/v1/orders/:id/advance-payments.
func (s *Server) AddAdvancePayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req advancePaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return badRequest(ctx, "Invalid date, expected YYYY-MM-DD")
	}

	cmd, err := commands.NewAddAdvancePaymentCommand(
		orderID,
		kernel.MoneyFromFloat(req.Amount),
		order.PaymentMethodFromString(req.Method),
		req.Detail,
		date,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commands.AddAdvancePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to add advance payment")
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateDeliveryNote handles POST /api/v1/delivery-notes/from-order.
func (s *Server) CreateDeliveryNote(ctx echo.Context) error {
	cmd, err := bindDocumentCommand(ctx, commands.NewCreateDeliveryNoteCommand)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	note, err := s.commands.CreateDeliveryNote.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to create delivery note")
	}

	return ctx.JSON(http.StatusCreated, documentJSON{
		ID:        note.ID().String(),
		Number:    note.Number(),
		ClientID:  note.ClientID().String(),
		EmitterID: note.EmitterID().String(),
		OrderID:   note.OriginOrderID().String(),
		IssueDate: note.IssueDate().Format(dateLayout),
		Items:     toDocumentItemsJSON(note.Items()),
		Total:     note.Total().Float64(),
	})
}

// CreateInvoice handles POST /api/v1/invoices/from-order.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	cmd, err := bindDocumentCommand(ctx, commands.NewCreateInvoiceCommand)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	invoice, err := s.commands.CreateInvoice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to create invoice")
	}

	return ctx.JSON(http.StatusCreated, documentJSON{
		ID:        invoice.ID().String(),
		Number:    invoice.Number(),
		ClientID:  invoice.ClientID().String(),
		EmitterID: invoice.EmitterID().String(),
		OrderID:   invoice.OriginOrderID().String(),
		IssueDate: invoice.IssueDate().Format(dateLayout),
		Items:     toDocumentItemsJSON(invoice.Items()),
		Total:     invoice.Total().Float64(),
	})
}

// GetClients handles GET /api/v1/clients - the client directory.
func (s *Server) GetClients(ctx echo.Context) error {
	query := queries.NewGetAllClientsQuery()

	clients, err := s.queries.AllClients.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve clients")
	}

	response := make([]clientJSON, len(clients))
	for i, c := range clients {
		response[i] = clientJSON{
			ID:               c.ID.String(),
			FirstName:        c.FirstName,
			LastName:         c.LastName,
			TradeName:        c.TradeName,
			DisplayName:      c.DisplayName,
			Address:          c.Address,
			Phone:            c.Phone,
			TaxID:            c.TaxID,
			DefaultEmitterID: c.DefaultEmitterID.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req clientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	emitterID, err := kernel.UUIDFromString(req.DefaultEmitterID)
	if err != nil {
		return badRequest(ctx, "Invalid default emitter id")
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateClientCommand(clientID, req.FirstName, req.LastName,
		req.TradeName, req.Address, req.Phone, req.TaxID, emitterID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commands.CreateClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to create client")
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": clientID.String()})
}

// UpdateClient handles PUT /api/v1/clients/:id.
func (s *Server) UpdateClient(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid client id")
	}

	var req clientRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	emitterID, err := kernel.UUIDFromString(req.DefaultEmitterID)
	if err != nil {
		return badRequest(ctx, "Invalid default emitter id")
	}

	cmd, err := commands.NewUpdateClientCommand(clientID, req.FirstName, req.LastName,
		req.TradeName, req.Address, req.Phone, req.TaxID, emitterID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commands.UpdateClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to update client")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetClientAccountStatement handles GET /api/v1/clients/:id/account-statement.
func (s *Server) GetClientAccountStatement(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid client id")
	}

	query, err := queries.NewGetClientAccountStatementQuery(clientID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	statement, err := s.queries.ClientAccountStatement.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve account statement")
	}

	movements := make([]accountMovementJSON, len(statement.Movements))
	for i, movement := range statement.Movements {
		movements[i] = accountMovementJSON{
			Date:           movement.Date.Format(dateLayout),
			DocumentType:   movement.DocumentType,
			DocumentNumber: movement.DocumentNumber,
			Debit:          movement.Debit.Float64(),
			Credit:         movement.Credit.Float64(),
			Balance:        movement.Balance.Float64(),
		}
	}

	return ctx.JSON(http.StatusOK, accountStatementJSON{
		ClientID:   statement.ClientID.String(),
		ClientName: statement.ClientName,
		Movements:  movements,
		Balance:    statement.Balance.Float64(),
	})
}

// GetEmitters handles GET /api/v1/emitters - the billing identity directory.
func (s *Server) GetEmitters(ctx echo.Context) error {
	query := queries.NewGetAllEmittersQuery()

	emitters, err := s.queries.AllEmitters.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve emitters")
	}

	response := make([]emitterJSON, len(emitters))
	for i, e := range emitters {
		response[i] = emitterJSON{
			ID:    e.ID.String(),
			Name:  e.Name,
			TaxID: e.TaxID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDashboardSummary handles GET /api/v1/dashboard/summary?date=YYYY-MM-DD -
// the day's collections by payment method, the cash/bank split, the invoiced
// total and the cash balance.
func (s *Server) GetDashboardSummary(ctx echo.Context) error {
	date := time.Now().UTC()
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return badRequest(ctx, "Invalid date, expected YYYY-MM-DD")
		}
		date = parsed
	}

	query, err := queries.NewGetDailyCashSummaryQuery(date)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	summary, err := s.queries.DailyCashSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve cash summary")
	}

	byMethod := make([]methodTotalJSON, len(summary.ByMethod))
	for i, m := range summary.ByMethod {
		byMethod[i] = methodTotalJSON{
			Method: m.Method,
			Count:  m.Count,
			Total:  m.Total.Float64(),
		}
	}

	return ctx.JSON(http.StatusOK, dailyCashSummaryJSON{
		Date:          summary.Date.Format(dateLayout),
		ByMethod:      byMethod,
		CashTotal:     summary.CashTotal.Float64(),
		BankTotal:     summary.BankTotal.Float64(),
		GrandTotal:    summary.GrandTotal.Float64(),
		InvoicedTotal: summary.InvoicedTotal.Float64(),
		CashBalance:   summary.CashBalance.Float64(),
	})
}

// buildOrderCommand converts an order request into a create or update command
// through the given constructor.
func buildOrderCommand[C any](
	orderID kernel.UUID,
	req orderRequest,
	construct func(kernel.UUID, kernel.UUID, time.Time, string, []commands.OrderItemInput) (C, error),
) (C, error) {
	var zero C

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return zero, err
	}

	deliveryDate, err := time.Parse(dateLayout, req.DeliveryDate)
	if err != nil {
		return zero, err
	}

	items := make([]commands.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.OrderItemInput{
			ProductDescription: item.Description,
			Specification:      item.Specification,
			QuantityRequested:  item.Quantity,
		}
		if item.UnitPrice != nil {
			price := kernel.MoneyFromFloat(*item.UnitPrice)
			items[i].UnitPrice = &price
		}
	}

	return construct(orderID, clientID, deliveryDate, req.Notes, items)
}

// bindDocumentCommand converts a from-order request into a delivery note or
// invoice command through the given constructor.
func bindDocumentCommand[C any](
	ctx echo.Context,
	construct func(kernel.UUID, kernel.UUID, time.Time, []commands.DocumentItemInput) (C, error),
) (C, error) {
	var zero C

	var req documentRequest
	if err := ctx.Bind(&req); err != nil {
		return zero, errors.New("invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return zero, err
	}
	emitterID, err := kernel.UUIDFromString(req.EmitterID)
	if err != nil {
		return zero, err
	}

	issueDate := time.Now().UTC()
	if req.IssueDate != "" {
		if issueDate, err = time.Parse(dateLayout, req.IssueDate); err != nil {
			return zero, err
		}
	}

	items := make([]commands.DocumentItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.DocumentItemInput{
			Description:   item.Description,
			Specification: item.Specification,
			Quantity:      item.Quantity,
			UnitPrice:     kernel.MoneyFromFloat(item.UnitPrice),
		}
	}

	return construct(orderID, emitterID, issueDate, items)
}

// badRequest writes a 400 error response.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorJSON{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps a use case error to its HTTP status: missing objects are
// 404, state conflicts with the lifecycle rules are 409, the rest is 500.
func writeError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorJSON{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrOrderIsNotEditable),
		errors.Is(err, order.ErrDeliveredToggleNotAllowed),
		errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusConflict, errorJSON{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorJSON{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
