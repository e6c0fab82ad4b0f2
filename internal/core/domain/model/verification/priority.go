package verification

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Priority orders the review queue. Higher values are more urgent.
type Priority int

const (
	PriorityUnknown Priority = iota
	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "unknown",
		PriorityLow:     "low",
		PriorityNormal:  "normal",
		PriorityHigh:    "high",
		PriorityUrgent:  "urgent",
	}
}

// Priorities lists every valid priority from least to most urgent.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}
}

func ParsePriority(s string) (Priority, error) {
	for p, name := range getPriorityStrings() {
		if p != PriorityUnknown && name == s {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%q is not a valid priority", s))
}

func (p Priority) Validate() error {
	if p < PriorityLow || p > PriorityUrgent {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Escalated raises the priority to High; High and Urgent are kept.
func (p Priority) Escalated() Priority {
	if p < PriorityHigh {
		return PriorityHigh
	}
	return p
}
