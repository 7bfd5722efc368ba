// Package kernel provides shared value objects used across the domain model.
//
// The package contains the building blocks that every aggregate depends on:
//   - UUID: validated identifier wrapping github.com/google/uuid
//   - Actor: a verified user identity plus role (shipper, carrier, system)
//   - SubjectType: shipment/offer discriminator for history and events
//
// All kernel types are immutable value objects with constructor validation.
// Zero values are invalid and fail Validate, which keeps improperly
// initialized identifiers from leaking into aggregates or persistence.
package kernel
