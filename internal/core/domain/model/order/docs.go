// Package order provides domain entities and business logic for order management.
// It implements the Order aggregate root with item ownership, derived totals,
// and lifecycle management through a status state machine.
//
// The package includes:
//   - Order: The aggregate root that owns its items and enforces structural invariants
//   - Item: An order line with a snapshot unit price, owned exclusively by its order
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Product identifiers among an order's items are unique at all times
//   - The order total is max(0, sum of item price x quantity minus discount)
//   - Items, discount, and customer reference are mutable only while the order
//     is in Created status; afterwards only the status itself may change
//   - Status follows the workflow Created -> Processing -> Shipped -> Delivered,
//     with Created -> Canceled as the only other exit; Delivered and Canceled
//     are terminal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
