package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the fulfillment workflow.
//
// State transitions:
//
//	Pending ──> PreparedIncomplete ──> PreparedComplete ──> ReadyForDispatch ──┬──> Remitted ──> Invoiced
//	                                                                           │                    ▲
//	                                                                           └────────────────────┘
//
// Preparation states (Pending, InPreparation, PreparedIncomplete,
// PreparedComplete) move freely among themselves as the item checklist
// changes. Cancelled and Invoiced are terminal. The delivered flag on the
// order is orthogonal to Status and tracked separately.
//
// Status serializes to the Spanish wire names used by the external system
// (PENDIENTE, EN_PREPARACION, ...). Unrecognized wire values map to Unknown
// rather than failing, so a malformed row can still be displayed with every
// mutating action disabled.
type Status int

const (
	// Unknown represents an invalid or unrecognized status.
	// This value (0) also helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: no item has been picked yet.
	Pending

	// InPreparation indicates picking has started.
	InPreparation

	// PreparedIncomplete indicates some, but not all, items are picked.
	PreparedIncomplete

	// PreparedComplete indicates every item is picked.
	PreparedComplete

	// ReadyForDispatch indicates the order can be remitted or invoiced.
	ReadyForDispatch

	// Remitted indicates a delivery note was generated from the order.
	Remitted

	// Invoiced indicates an invoice was generated. Terminal.
	Invoiced

	// Cancelled indicates the order was cancelled. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "DESCONOCIDO",
		Pending:            "PENDIENTE",
		InPreparation:      "EN_PREPARACION",
		PreparedIncomplete: "PREPARADO_INCOMPLETO",
		PreparedComplete:   "PREPARADO_COMPLETO",
		ReadyForDispatch:   "LISTO_PARA_DESPACHO",
		Remitted:           "REMITIDO",
		Invoiced:           "FACTURADO",
		Cancelled:          "CANCELADO",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:            "PENDIENTE",
		InPreparation:      "EN_PREPARACION",
		PreparedIncomplete: "PREPARADO_INCOMPLETO",
		PreparedComplete:   "PREPARADO_COMPLETO",
		ReadyForDispatch:   "LISTO_PARA_DESPACHO",
		Remitted:           "REMITIDO",
		Invoiced:           "FACTURADO",
		Cancelled:          "CANCELADO",
	}
}

// StatusFromString maps a wire name to its Status. Unrecognized values map to
// Unknown without an error: the caller degrades to the most restrictive
// action set instead of failing the whole request.
func StatusFromString(s string) Status {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status
		}
	}
	return Unknown
}

// Validate checks that the Status is one of the eight lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the Spanish wire name of the status, or "DESCONOCIDO" for
// any invalid value. Implements fmt.Stringer and is safe on any Status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "DESCONOCIDO"
}

// IsTerminal reports whether no further lifecycle transition is offered.
func (s Status) IsTerminal() bool {
	return s == Invoiced || s == Cancelled
}

// IsPreparation reports whether the status is derived from the item
// checklist. Only these states are recomputed when items are picked.
func (s Status) IsPreparation() bool {
	switch s {
	case Pending, InPreparation, PreparedIncomplete, PreparedComplete:
		return true
	default:
		return false
	}
}

// MarkReady transitions the status to ReadyForDispatch.
//
// Valid transitions:
//   - PreparedComplete -> ReadyForDispatch
//
// Returns (0, error) for any other current status.
func (s Status) MarkReady() (Status, error) {
	if s != PreparedComplete {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to mark ready for dispatch", s.String()),
		)
	}
	return ReadyForDispatch, nil
}

// Remit transitions the status to Remitted when a delivery note is generated.
//
// Valid transitions:
//   - ReadyForDispatch -> Remitted
//
// Returns (0, error) for any other current status.
func (s Status) Remit() (Status, error) {
	if s != ReadyForDispatch {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to generate a delivery note", s.String()),
		)
	}
	return Remitted, nil
}

// Invoice transitions the status to Invoiced when an invoice is generated.
//
// Valid transitions:
//   - ReadyForDispatch -> Invoiced
//   - Remitted -> Invoiced
//
// Returns (0, error) for any other current status.
func (s Status) Invoice() (Status, error) {
	if s != ReadyForDispatch && s != Remitted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to generate an invoice", s.String()),
		)
	}
	return Invoiced, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal status that has not been remitted. Once a
// delivery note or invoice exists the order can no longer be cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() || s == Remitted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
