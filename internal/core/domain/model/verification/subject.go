package verification

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// SubjectType is the kind of party being verified.
type SubjectType int

const (
	SubjectUnknown SubjectType = iota
	SubjectBusiness
	SubjectDriver
)

func getSubjectStrings() map[SubjectType]string {
	return map[SubjectType]string{
		SubjectUnknown:  "unknown",
		SubjectBusiness: "business",
		SubjectDriver:   "driver",
	}
}

func ParseSubjectType(s string) (SubjectType, error) {
	for st, name := range getSubjectStrings() {
		if st != SubjectUnknown && name == s {
			return st, nil
		}
	}
	return SubjectUnknown, errs.NewValueIsInvalidErrorWithCause("subject type is invalid", fmt.Errorf("%q is not a valid subject type", s))
}

func (t SubjectType) Validate() error {
	if t != SubjectBusiness && t != SubjectDriver {
		return errs.NewValueIsInvalidErrorWithCause("subject type is invalid", fmt.Errorf("%d is not a valid subject type", t))
	}
	return nil
}

func (t SubjectType) String() string {
	if str, ok := getSubjectStrings()[t]; ok {
		return str
	}
	return "unknown"
}
