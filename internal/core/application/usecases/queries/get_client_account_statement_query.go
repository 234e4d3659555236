package queries

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrGetClientAccountStatementQueryIsNotConstructed = errors.New(
	"GetClientAccountStatementQuery must be created via NewGetClientAccountStatementQuery constructor",
)

// Document types appearing on an account statement.
const (
	DocumentTypeInvoice        = "FACTURA"
	DocumentTypeAdvancePayment = "PAGO"
)

// GetClientAccountStatementQuery retrieves a client's account statement: the
// chronological document movements and the resulting balance. Invoices debit
// the account, advance payments credit it.
type GetClientAccountStatementQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientAccountStatementQuery creates a statement query for one client.
func NewGetClientAccountStatementQuery(clientID kernel.UUID) (GetClientAccountStatementQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientAccountStatementQuery{}, err
	}

	return GetClientAccountStatementQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientAccountStatementQuery) Validate() error {
	return q.guard.Validate(ErrGetClientAccountStatementQueryIsNotConstructed)
}

// ClientID returns the client whose statement is requested.
func (q GetClientAccountStatementQuery) ClientID() kernel.UUID {
	return q.clientID
}

// AccountMovementResponse is one movement on the statement. Exactly one of
// Debit and Credit is non-zero; Balance is the running balance after this
// movement. DocumentNumber is empty for advance payments, which carry no
// number series.
type AccountMovementResponse struct {
	Date           time.Time
	DocumentType   string
	DocumentNumber string
	Debit          kernel.Money
	Credit         kernel.Money
	Balance        kernel.Money
}

// AccountStatementResponse is a client's account statement. Balance repeats
// the running balance of the last movement; an empty statement balances at
// zero.
type AccountStatementResponse struct {
	ClientID   kernel.UUID
	ClientName string
	Movements  []AccountMovementResponse
	Balance    kernel.Money
}
