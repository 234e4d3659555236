// Package services provides domain services that orchestrate business
// operations across multiple aggregates. It implements workflows that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - DocumentIssuer: builds invoices and delivery notes from an order and
//     advances the order's lifecycle in the same step
package services
