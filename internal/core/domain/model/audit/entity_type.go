package audit

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// EntityType names the kind of record an Entry describes.
type EntityType string

const (
	EntityApplication EntityType = "verification_application"
	EntityDocument    EntityType = "verification_document"
	EntityInfoRequest EntityType = "verification_info_request"
	EntityOrder       EntityType = "order"
)

// ParseEntityType converts the stored or transported name back into an EntityType.
func ParseEntityType(s string) (EntityType, error) {
	t := EntityType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t EntityType) Validate() error {
	switch t {
	case EntityApplication, EntityDocument, EntityInfoRequest, EntityOrder:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("entity type is invalid", fmt.Errorf("%q is not a known entity type", string(t)))
	}
}

func (t EntityType) String() string {
	return string(t)
}
