// Package order contains the Order aggregate and its supporting value types.
//
// Order is the aggregate root: it owns its line items (Item), its payment
// method, and its lifecycle state (Status). The status transition table in
// status.go is the single source of truth for legal lifecycle moves; both
// ChangeStatus and Cancel consult it.
//
// Financial invariants are enforced at construction: each item's total price
// must equal its unit price times its quantity, and the order's total amount
// must equal the sum of the items' totals. Prices are snapshots taken from
// the catalog at order-creation time and never change afterwards.
package order
