// Package order provides the Order aggregate and its delivery lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding the customer, business, delivery person
//     and the append-only status history
//   - Status: the forward-only state machine with its progress table
//
// Key business rules:
//   - Orders move one step at a time along
//     pending -> confirmed -> preparing -> ready -> assigned -> picked_up -> on_the_way -> delivered
//   - Cancelled is reachable from every non-terminal status and needs a reason
//   - Assigned is only reached by assigning a delivery person to a ready order,
//     and an order holds at most one delivery person
//   - Every status change appends a history entry and an audit entry
package order
