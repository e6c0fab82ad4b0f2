// Package services provides domain services that work across the aggregates
// of the marketplace engine.
//
// The package includes:
//   - LifecycleHooks: turns terminal transitions of applications and orders
//     into integration events for the outbox (account activation, notifications)
//
// Hooks are pure: they only describe what happened. The command handlers store
// the events in the same transaction as the state change, and the outbox relay
// publishes them afterwards.
package services
