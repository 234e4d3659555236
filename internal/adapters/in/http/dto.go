package http

import (
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/billing"
)

// errorJSON is the error envelope of every non-2xx response.
type errorJSON struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type orderItemRequest struct {
	Description   string   `json:"description"`
	Specification string   `json:"specification"`
	Quantity      int      `json:"quantity"`
	UnitPrice     *float64 `json:"unitPrice"`
}

type orderRequest struct {
	ClientID     string             `json:"clientId"`
	DeliveryDate string             `json:"deliveryDate"`
	Notes        string             `json:"notes"`
	Items        []orderItemRequest `json:"items"`
}

type deliveredRequest struct {
	Delivered bool `json:"delivered"`
}

type checklistRequest struct {
	Picked bool   `json:"picked"`
	Notes  string `json:"notes"`
}

type advancePaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Detail string  `json:"detail"`
	Date   string  `json:"date"`
}

type documentItemRequest struct {
	Description   string  `json:"description"`
	Specification string  `json:"specification"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
}

// documentRequest asks for a delivery note or invoice generated from an
// order. Items are optional; when omitted the order's priced lines are used.
type documentRequest struct {
	OrderID   string                `json:"orderId"`
	EmitterID string                `json:"emitterId"`
	IssueDate string                `json:"issueDate"`
	Items     []documentItemRequest `json:"items"`
}

type clientRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	TradeName        string `json:"tradeName"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	TaxID            string `json:"taxId"`
	DefaultEmitterID string `json:"defaultEmitterId"`
}

type actionsJSON struct {
	Edit                 bool `json:"edit"`
	Delete               bool `json:"delete"`
	ToggleDelivered      bool `json:"toggleDelivered"`
	GenerateDeliveryNote bool `json:"generateDeliveryNote"`
	GenerateInvoice      bool `json:"generateInvoice"`
}

type orderItemJSON struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	Specification string   `json:"specification"`
	Quantity      int      `json:"quantity"`
	UnitPrice     *float64 `json:"unitPrice"`
	Picked        bool     `json:"picked"`
	Notes         string   `json:"notes"`
	Subtotal      float64  `json:"subtotal"`
}

type advancePaymentJSON struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Detail string  `json:"detail"`
	Date   string  `json:"date"`
}

type orderJSON struct {
	ID            string               `json:"id"`
	ClientID      string               `json:"clientId"`
	ClientName    string               `json:"clientName"`
	DeliveryDate  string               `json:"deliveryDate"`
	Notes         string               `json:"notes"`
	Status        string               `json:"status"`
	Delivered     bool                 `json:"delivered"`
	Category      string               `json:"category"`
	Actions       actionsJSON          `json:"actions"`
	OrderTotal    float64              `json:"orderTotal"`
	AdvancesTotal float64              `json:"advancesTotal"`
	BalanceDue    float64              `json:"balanceDue"`
	Items         []orderItemJSON      `json:"items"`
	Advances      []advancePaymentJSON `json:"advancePayments"`
}

type documentItemJSON struct {
	Description   string  `json:"description"`
	Specification string  `json:"specification"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	Subtotal      float64 `json:"subtotal"`
}

type documentJSON struct {
	ID        string             `json:"id"`
	Number    int                `json:"number"`
	ClientID  string             `json:"clientId"`
	EmitterID string             `json:"emitterId"`
	OrderID   string             `json:"orderId"`
	IssueDate string             `json:"issueDate"`
	Items     []documentItemJSON `json:"items"`
	Total     float64            `json:"total"`
}

type clientJSON struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	TradeName        string `json:"tradeName"`
	DisplayName      string `json:"displayName"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	TaxID            string `json:"taxId"`
	DefaultEmitterID string `json:"defaultEmitterId"`
}

type emitterJSON struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"taxId"`
}

type accountMovementJSON struct {
	Date           string  `json:"date"`
	DocumentType   string  `json:"documentType"`
	DocumentNumber string  `json:"documentNumber"`
	Debit          float64 `json:"debit"`
	Credit         float64 `json:"credit"`
	Balance        float64 `json:"balance"`
}

type accountStatementJSON struct {
	ClientID   string                `json:"clientId"`
	ClientName string                `json:"clientName"`
	Movements  []accountMovementJSON `json:"movements"`
	Balance    float64               `json:"balance"`
}

type methodTotalJSON struct {
	Method string  `json:"method"`
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
}

type dailyCashSummaryJSON struct {
	Date          string            `json:"date"`
	ByMethod      []methodTotalJSON `json:"byMethod"`
	CashTotal     float64           `json:"cashTotal"`
	BankTotal     float64           `json:"bankTotal"`
	GrandTotal    float64           `json:"grandTotal"`
	InvoicedTotal float64           `json:"invoicedTotal"`
	CashBalance   float64           `json:"cashBalance"`
}

// toOrderJSON maps a query response to its wire representation.
func toOrderJSON(resp queries.OrderResponse) orderJSON {
	items := make([]orderItemJSON, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = orderItemJSON{
			ID:            item.ID.String(),
			Description:   item.ProductDescription,
			Specification: item.Specification,
			Quantity:      item.QuantityRequested,
			Picked:        item.Picked,
			Notes:         item.Notes,
			Subtotal:      item.Subtotal.Float64(),
		}
		if item.UnitPrice != nil {
			price := item.UnitPrice.Float64()
			items[i].UnitPrice = &price
		}
	}

	advances := make([]advancePaymentJSON, len(resp.Advances))
	for i, advance := range resp.Advances {
		advances[i] = advancePaymentJSON{
			ID:     advance.ID.String(),
			Amount: advance.Amount.Float64(),
			Method: advance.Method,
			Detail: advance.Detail,
			Date:   advance.Date.Format(dateLayout),
		}
	}

	return orderJSON{
		ID:           resp.ID.String(),
		ClientID:     resp.ClientID.String(),
		ClientName:   resp.ClientName,
		DeliveryDate: resp.DeliveryDate.Format(dateLayout),
		Notes:        resp.Notes,
		Status:       resp.Status,
		Delivered:    resp.Delivered,
		Category:     resp.Category,
		Actions: actionsJSON{
			Edit:                 resp.Actions.Edit,
			Delete:               resp.Actions.Delete,
			ToggleDelivered:      resp.Actions.ToggleDelivered,
			GenerateDeliveryNote: resp.Actions.GenerateDeliveryNote,
			GenerateInvoice:      resp.Actions.GenerateInvoice,
		},
		OrderTotal:    resp.OrderTotal.Float64(),
		AdvancesTotal: resp.AdvancesTotal.Float64(),
		BalanceDue:    resp.BalanceDue.Float64(),
		Items:         items,
		Advances:      advances,
	}
}

// toDocumentItemsJSON maps document lines to their wire representation.
func toDocumentItemsJSON(items []billing.DocumentItem) []documentItemJSON {
	result := make([]documentItemJSON, len(items))
	for i, item := range items {
		result[i] = documentItemJSON{
			Description:   item.Description(),
			Specification: item.Specification(),
			Quantity:      item.Quantity(),
			UnitPrice:     item.UnitPrice().Float64(),
			Subtotal:      item.Subtotal().Float64(),
		}
	}
	return result
}
