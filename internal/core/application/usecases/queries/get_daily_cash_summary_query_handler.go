package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// GetDailyCashSummaryQueryHandler sums one day's money movement: the advance
// payments collected that day split into cash and bank, and the total billed
// on the invoices issued that day.
type GetDailyCashSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetDailyCashSummaryQueryHandler creates a handler for cash summary queries.
func NewGetDailyCashSummaryQueryHandler(db *gorm.DB) GetDailyCashSummaryQueryHandler {
	return GetDailyCashSummaryQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDailyCashSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDailyCashSummaryQuery,
) (*DailyCashSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp := &DailyCashSummaryResponse{
		Date:          query.Date(),
		ByMethod:      make([]MethodTotalResponse, 0),
		CashTotal:     kernel.ZeroMoney(),
		BankTotal:     kernel.ZeroMoney(),
		GrandTotal:    kernel.ZeroMoney(),
		InvoicedTotal: kernel.ZeroMoney(),
		CashBalance:   kernel.ZeroMoney(),
	}

	if err := h.collectPayments(ctx, resp); err != nil {
		return nil, err
	}
	if err := h.collectInvoiced(ctx, resp); err != nil {
		return nil, err
	}

	resp.CashBalance = resp.CashTotal
	return resp, nil
}

func (h GetDailyCashSummaryQueryHandler) collectPayments(
	ctx context.Context,
	resp *DailyCashSummaryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			method,
			COUNT(*),
			SUM(amount)
		FROM advance_payments
		WHERE date = ?
		GROUP BY method
		ORDER BY method
	`, resp.Date).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var methodTotal MethodTotalResponse
		var total decimal.Decimal

		if err = rows.Scan(&methodTotal.Method, &methodTotal.Count, &total); err != nil {
			return err
		}
		methodTotal.Total = kernel.NewMoney(total)

		resp.GrandTotal = resp.GrandTotal.Add(methodTotal.Total)
		if order.PaymentMethodFromString(methodTotal.Method).IsCashLike() {
			resp.CashTotal = resp.CashTotal.Add(methodTotal.Total)
		} else {
			resp.BankTotal = resp.BankTotal.Add(methodTotal.Total)
		}
		resp.ByMethod = append(resp.ByMethod, methodTotal)
	}

	return rows.Err()
}

func (h GetDailyCashSummaryQueryHandler) collectInvoiced(
	ctx context.Context,
	resp *DailyCashSummaryResponse,
) error {
	var invoiced decimal.Decimal

	row := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(it.quantity * it.unit_price), 0)
		FROM invoices i
		JOIN invoice_items it ON it.invoice_id = i.id
		WHERE i.issue_date = ?
	`, resp.Date).Row()
	if err := row.Scan(&invoiced); err != nil {
		return err
	}

	resp.InvoicedTotal = kernel.NewMoney(invoiced)
	return nil
}
