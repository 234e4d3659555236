// Package order provides the domain model for the order fulfillment
// lifecycle: the Order aggregate root with its line items and advance
// payments, the Status state machine, and the eligibility engine that derives
// permitted actions, list-display categories and monetary aggregates from an
// order snapshot.
//
// Key business rules:
//   - Status follows the preparation workflow PENDIENTE -> PREPARADO_INCOMPLETO
//     -> PREPARADO_COMPLETO -> LISTO_PARA_DESPACHO, then branches into
//     REMITIDO (delivery note) and FACTURADO (invoice, terminal); CANCELADO is
//     terminal too
//   - The delivered flag is orthogonal to status and can be toggled for any
//     non-cancelled order
//   - Editing, deleting and taking advance payments require an order that is
//     neither delivered, remitted, invoiced nor cancelled
//   - Monetary totals use decimal arithmetic; unpriced items count as zero
//   - Unrecognized status values degrade to the most restrictive action set
//     and the "unknown" display category instead of raising
//
// Every rule lives in exactly one place (ActionsFor, CategoryFor) and is
// re-derived from fresh state on each call, with no hidden memory.
package order
