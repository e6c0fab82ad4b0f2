package audit

import (
	"slices"
)

// Key identifies one audited record.
type Key struct {
	EntityType EntityType
	EntityID   string
}

// Replay folds a trail into the last recorded state of every record.
//
// Stored entries are ordered by sequence; unstored ones keep their relative
// order after all stored ones. The result for a record must equal the state
// currently held by its aggregate.
func Replay(entries []Entry) map[Key]string {
	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, func(a, b Entry) int {
		switch {
		case a.sequence == 0 && b.sequence == 0:
			return 0
		case a.sequence == 0:
			return 1
		case b.sequence == 0:
			return -1
		case a.sequence < b.sequence:
			return -1
		case a.sequence > b.sequence:
			return 1
		default:
			return 0
		}
	})

	states := make(map[Key]string)
	for _, e := range ordered {
		states[Key{EntityType: e.entityType, EntityID: e.entityID.String()}] = e.toState
	}
	return states
}
