// Package offer provides the Offer aggregate for carrier bids on shipments.
//
// An offer is created pending by a carrier and decided exactly once by the
// shipment owner: accepted or rejected, both terminal. When one offer is
// accepted, all pending sibling offers for the same shipment are rejected by
// the workflow; when a shipment is cancelled, its pending offers are rejected
// the same way.
package offer
