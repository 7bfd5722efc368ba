// Package shipment provides the Shipment aggregate and its status state
// machine for the freight marketplace workflow.
//
// The package includes:
//   - Shipment: the aggregate root owning the current status and the
//     carrier assignment
//   - Status: a closed taxonomy that enforces valid transitions
//
// Key business rules:
//   - Shipments are created pending and published to waiting_for_offers
//   - offer_accepted can only be entered by accepting an offer, which also
//     assigns the carrier
//   - The assigned carrier drives in_progress, in_transit, and delivered
//   - The shipper confirms completion and may cancel any non-terminal shipment
//   - Unknown status strings are rejected rather than persisted
package shipment
