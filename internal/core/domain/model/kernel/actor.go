package kernel

import (
	"fmt"

	"yolnext/internal/pkg/errs"
)

// Role identifies the kind of user initiating a transition.
// Roles come from the external authentication collaborator; the workflow
// only decides what each role is allowed to do.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleShipper is the owner of a shipment. Shippers publish shipments,
	// accept or reject offers, confirm completion, and may cancel.
	RoleShipper

	// RoleCarrier is a transport provider. Carriers submit offers and
	// advance assigned shipments through the delivery stages.
	RoleCarrier

	// RoleSystem marks transitions performed by the workflow itself,
	// such as closing sibling offers after an acceptance.
	RoleSystem
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleShipper: "shipper",
		RoleCarrier: "carrier",
		RoleSystem:  "system",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleShipper: "shipper",
		RoleCarrier: "carrier",
		RoleSystem:  "system",
	}
}

// RoleFromString parses the wire representation of a role.
// Unknown values are rejected rather than defaulted.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire representation of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Role value is one of the valid roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ErrActorIsNotConstructed indicates an Actor that was not created via NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// Actor is the identity initiating a transition: a user ID together with
// the role the external authentication collaborator verified for it.
// Actor is an immutable value object.
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates an actor from a validated identity and role.
// Returns an error if the ID or role is invalid.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{id: id, role: role}, nil
}

// NewSystemActor creates the actor used for workflow-initiated transitions,
// such as closing sibling offers when one is accepted.
func NewSystemActor() Actor {
	return Actor{id: NewUUID(), role: RoleSystem}
}

// ID returns the actor's user identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's verified role.
func (a Actor) Role() Role {
	return a.role
}

// IsSystem reports whether the actor represents the workflow itself.
func (a Actor) IsSystem() bool {
	return a.role == RoleSystem
}

// Validate checks that the actor was created through a constructor.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return ErrActorIsNotConstructed
	}
	return a.role.Validate()
}
