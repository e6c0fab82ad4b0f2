package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Revision is the optimistic-locking counter carried by every aggregate.
//
// It remembers the version the aggregate was loaded at and the version it will
// be written as. Repositories update with "WHERE version = Expected()" and store
// Current(); a zero-row update means another writer got there first.
type Revision struct {
	expected int64
	current  int64
}

// NewRevision starts a brand-new aggregate at version 1. There is no stored row,
// so Expected is 0.
func NewRevision() Revision {
	return Revision{expected: 0, current: 1}
}

// RestoreRevision rebuilds the counter for an aggregate read from storage.
func RestoreRevision(version int64) (Revision, error) {
	if version < 1 {
		return Revision{}, errs.NewValueIsInvalidErrorWithCause(
			"version is invalid",
			fmt.Errorf("%d is not a stored version", version),
		)
	}
	return Revision{expected: version, current: version}, nil
}

// Bump advances the version once for a state-changing operation.
func (r *Revision) Bump() {
	r.current++
}

// Expected is the version that must still be stored for the write to succeed.
func (r Revision) Expected() int64 {
	return r.expected
}

// Current is the version the aggregate has after its pending changes.
func (r Revision) Current() int64 {
	return r.current
}

// HasChanges reports whether any operation bumped the version since load.
func (r Revision) HasChanges() bool {
	return r.current != r.expected
}

// IsNew reports whether the aggregate was never stored.
func (r Revision) IsNew() bool {
	return r.expected == 0
}
