// Package verification models onboarding review of businesses and drivers.
//
// The package includes:
//   - Application: the aggregate root that owns documents, review records and
//     additional-info requests, and moves through the verification lifecycle
//   - Status: the lifecycle state machine with its single transition table
//   - Document: a submitted document with its own review decision
//   - InfoRequest: a request for more information with a soft due date
//
// Key business rules:
//   - The overall status only changes through Application.transition, which
//     always appends a ReviewRecord and an audit entry
//   - An application cannot be approved while a required document is not approved
//   - Only one reviewer holds an application at a time; a second reviewer gets
//     a reviewer conflict until the case reaches a terminal state
//   - Overdue info requests expire and escalate priority; they never reject
package verification
