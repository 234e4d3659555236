package queries

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrGetDailyCashSummaryQueryIsNotConstructed = errors.New(
	"GetDailyCashSummaryQuery must be created via NewGetDailyCashSummaryQuery constructor",
)

// GetDailyCashSummaryQuery retrieves the money collected on one calendar day,
// split by payment method so the physical cash box can be reconciled.
type GetDailyCashSummaryQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetDailyCashSummaryQuery creates a cash summary query for one day.
func NewGetDailyCashSummaryQuery(date time.Time) (GetDailyCashSummaryQuery, error) {
	if date.IsZero() {
		return GetDailyCashSummaryQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetDailyCashSummaryQuery{
		date:  date.Truncate(24 * time.Hour),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDailyCashSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyCashSummaryQueryIsNotConstructed)
}

// Date returns the queried calendar day.
func (q GetDailyCashSummaryQuery) Date() time.Time {
	return q.date
}

// MethodTotalResponse is the collected total for one payment method.
type MethodTotalResponse struct {
	Method string
	Count  int
	Total  kernel.Money
}

// DailyCashSummaryResponse is the money movement of one day. CashTotal covers
// the payment methods that land in the physical cash box (EFECTIVO, MIXTO),
// BankTotal the ones that land on an account (TRANSFERENCIA, CHEQUE);
// together they make up GrandTotal. InvoicedTotal is what was billed that
// day, summed over the lines of the invoices issued on it. CashBalance is
// what the cash box should hold at close; with no expense ledger it equals
// the cash collected.
type DailyCashSummaryResponse struct {
	Date          time.Time
	ByMethod      []MethodTotalResponse
	CashTotal     kernel.Money
	BankTotal     kernel.Money
	GrandTotal    kernel.Money
	InvoicedTotal kernel.Money
	CashBalance   kernel.Money
}
