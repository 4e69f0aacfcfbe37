// Package order provides domain entities and business logic for delivery
// order management. It implements the Order aggregate root with lifecycle
// management, role-aware state transitions, and list partitioning.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, details, and lifecycle
//   - Status: A state machine over the seven lifecycle statuses
//   - Actor and the transition table: who may move an order between statuses
//   - Number: the human-readable order code, caller-supplied or generated
//   - Priority: the four urgency levels
//
// Key business rules:
//   - Orders require a customer name, pickup address, and delivery address
//   - Drivers progress orders Assigned -> InTransit -> Delivered, retry from
//     Failed, and may change status manually from the Delivered and Failed end
//     states; all driver moves are gated by the transition table
//   - Admins may move any order to any status, including backwards
//   - Capability flags (CanStart, CanDeliver, CanComplete) are recomputed from
//     the current status on every read
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
