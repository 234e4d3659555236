package queries

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

// GetClientAccountStatementQueryHandler builds a client's account statement
// from the issued invoices and the collected advance payments. Amounts are
// carried as decimals end to end, so the final balance equals the sum of
// the debit and credit columns.
type GetClientAccountStatementQueryHandler struct {
	db *gorm.DB
}

// NewGetClientAccountStatementQueryHandler creates a handler for statement queries.
func NewGetClientAccountStatementQueryHandler(db *gorm.DB) GetClientAccountStatementQueryHandler {
	return GetClientAccountStatementQueryHandler{db: db}
}

// Handle executes the query. Invoices are priced from their own lines, not
// from the origin order, so re-priced invoices settle at the invoiced amount.
// Movements are listed oldest first with a running balance; payments on
// cancelled orders are left out because the receivable they settled is gone.
func (h GetClientAccountStatementQueryHandler) Handle(
	ctx context.Context,
	query GetClientAccountStatementQuery,
) (*AccountStatementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp := &AccountStatementResponse{
		ClientID:  query.ClientID(),
		Movements: make([]AccountMovementResponse, 0),
		Balance:   kernel.ZeroMoney(),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(NULLIF(trade_name, ''), TRIM(first_name || ' ' || last_name))
		FROM clients
		WHERE id = ?
	`, query.ClientID().Bytes()).Row()
	if err := row.Scan(&resp.ClientName); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("clientID", query.ClientID().String(), err)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.issue_date,
			? AS document_type,
			i.number,
			COALESCE((
				SELECT SUM(it.quantity * it.unit_price)
				FROM invoice_items it
				WHERE it.invoice_id = i.id
			), 0) AS debit,
			0 AS credit
		FROM invoices i
		WHERE i.client_id = ?
		UNION ALL
		SELECT
			p.date,
			? AS document_type,
			0,
			0,
			p.amount
		FROM advance_payments p
		JOIN orders o ON o.id = p.order_id
		WHERE o.client_id = ? AND o.status != ?
		ORDER BY 1, 2, 3
	`, DocumentTypeInvoice, query.ClientID().Bytes(),
		DocumentTypeAdvancePayment, query.ClientID().Bytes(),
		order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var movement AccountMovementResponse
		var number int
		var debit, credit decimal.Decimal

		if err = rows.Scan(&movement.Date, &movement.DocumentType,
			&number, &debit, &credit); err != nil {
			return nil, err
		}

		movement.Debit = kernel.NewMoney(debit)
		movement.Credit = kernel.NewMoney(credit)
		if movement.DocumentType == DocumentTypeInvoice {
			movement.DocumentNumber = strconv.Itoa(number)
		}

		resp.Balance = resp.Balance.Add(movement.Debit).Sub(movement.Credit)
		movement.Balance = resp.Balance
		resp.Movements = append(resp.Movements, movement)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return resp, nil
}
