package order

import "pedidos/internal/core/domain/model/kernel"

// Actions is the set of operations currently offered for an order. It is a
// pure function of (status, delivered): re-evaluated on every snapshot, with
// no memory of prior eligibility. Every view and every command handler reads
// the same rules from here, so the decision table lives in exactly one place.
type Actions struct {
	Edit                 bool
	Delete               bool
	ToggleDelivered      bool
	GenerateDeliveryNote bool
	GenerateInvoice      bool
}

// Category is the display-priority bucket for list views. Presentation maps a
// category to a style; the engine never deals in colors.
type Category int

const (
	// CategoryUnknown is the defensive default for unrecognized states.
	CategoryUnknown Category = iota

	// CategoryFulfilled marks delivered orders, regardless of status.
	CategoryFulfilled

	// CategoryNeedsAttention marks pending orders awaiting preparation.
	CategoryNeedsAttention

	// CategoryInProgress marks orders being picked.
	CategoryInProgress

	// CategoryReady marks fully prepared orders.
	CategoryReady

	// CategoryDispatched marks remitted orders.
	CategoryDispatched

	// CategoryCompleted marks invoiced orders.
	CategoryCompleted

	// CategoryInactive marks cancelled orders.
	CategoryInactive
)

// String returns the category name used on the wire.
func (c Category) String() string {
	switch c {
	case CategoryFulfilled:
		return "fulfilled"
	case CategoryNeedsAttention:
		return "needs-attention"
	case CategoryInProgress:
		return "in-progress"
	case CategoryReady:
		return "ready"
	case CategoryDispatched:
		return "dispatched"
	case CategoryCompleted:
		return "completed"
	case CategoryInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// ActionsFor derives the action eligibility for a (status, delivered) pair.
//
// Rules:
//   - edit and delete require an order that is not delivered and whose status
//     is none of Cancelled, Invoiced, Remitted
//   - the delivered flag can be toggled unless the order is cancelled
//   - a delivery note is offered only from ReadyForDispatch
//   - an invoice is offered from ReadyForDispatch or Remitted
//   - Unknown status disables every action, so a malformed row can never be
//     mutated
func ActionsFor(status Status, delivered bool) Actions {
	if status.Validate() != nil {
		return Actions{}
	}

	editable := !delivered &&
		status != Cancelled &&
		status != Invoiced &&
		status != Remitted

	return Actions{
		Edit:                 editable,
		Delete:               editable,
		ToggleDelivered:      status != Cancelled,
		GenerateDeliveryNote: status == ReadyForDispatch,
		GenerateInvoice:      status == ReadyForDispatch || status == Remitted,
	}
}

// CategoryFor classifies a (status, delivered) pair for list display.
// The precedence is fixed: delivered overrides everything, then statuses are
// bucketed from most to least urgent. Never panics; anything unrecognized
// falls through to CategoryUnknown.
func CategoryFor(status Status, delivered bool) Category {
	switch {
	case delivered:
		return CategoryFulfilled
	case status == Pending:
		return CategoryNeedsAttention
	case status == InPreparation || status == PreparedIncomplete:
		return CategoryInProgress
	case status == PreparedComplete || status == ReadyForDispatch:
		return CategoryReady
	case status == Remitted:
		return CategoryDispatched
	case status == Invoiced:
		return CategoryCompleted
	case status == Cancelled:
		return CategoryInactive
	default:
		return CategoryUnknown
	}
}

// Evaluation is the full engine output for one order snapshot: the permitted
// actions, the list category and the monetary aggregates.
type Evaluation struct {
	Actions       Actions
	Category      Category
	OrderTotal    kernel.Money
	AdvancesTotal kernel.Money
	BalanceDue    kernel.Money
}

// Evaluate runs the whole engine over one order snapshot. It is idempotent
// and side-effect free; callers re-run it against fresh data after any
// mutation instead of trusting a previous output.
func Evaluate(o *Order) Evaluation {
	return Evaluation{
		Actions:       ActionsFor(o.Status(), o.Delivered()),
		Category:      CategoryFor(o.Status(), o.Delivered()),
		OrderTotal:    o.Total(),
		AdvancesTotal: o.AdvancesTotal(),
		BalanceDue:    o.BalanceDue(),
	}
}
