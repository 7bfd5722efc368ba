package kernel

import (
	"fmt"

	"yolnext/internal/pkg/errs"
)

// SubjectType distinguishes the two kinds of subjects a transition can apply
// to. History records and notification events reference their subject by
// (SubjectType, UUID) pairs rather than by aggregate, keeping the audit trail
// an independent, weak reference.
type SubjectType int

const (
	// SubjectUnknown represents an invalid or undefined subject type.
	SubjectUnknown SubjectType = iota

	// SubjectShipment marks a record or event about a shipment.
	SubjectShipment

	// SubjectOffer marks a record or event about an offer.
	SubjectOffer
)

func getSubjectTypeStrings() map[SubjectType]string {
	return map[SubjectType]string{
		SubjectUnknown:  "unknown",
		SubjectShipment: "shipment",
		SubjectOffer:    "offer",
	}
}

func getValidSubjectTypeStrings() map[SubjectType]string {
	//nolint:exhaustive // SubjectUnknown is intentionally excluded as it's invalid
	return map[SubjectType]string{
		SubjectShipment: "shipment",
		SubjectOffer:    "offer",
	}
}

// SubjectTypeFromString parses the wire representation of a subject type.
// Unknown values are rejected.
func SubjectTypeFromString(s string) (SubjectType, error) {
	for st, str := range getValidSubjectTypeStrings() {
		if str == s {
			return st, nil
		}
	}
	return SubjectUnknown, errs.NewValueIsInvalidErrorWithCause(
		"subjectType", fmt.Errorf("%q is not a valid subject type", s))
}

// String returns the wire representation of the subject type.
func (s SubjectType) String() string {
	if str, ok := getSubjectTypeStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the SubjectType value is valid.
func (s SubjectType) Validate() error {
	if _, ok := getValidSubjectTypeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"subjectType", fmt.Errorf("%d is not a valid subject type", s))
	}
	return nil
}
