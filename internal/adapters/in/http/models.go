package http

import "time"

// Error is the common error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewShipment is the request body for publishing a shipment.
type NewShipment struct {
	ShipperID   string `json:"shipper_id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	WeightKg    int    `json:"weight_kg"`
	Price       int64  `json:"price"`
}

// NewOffer is the request body for submitting a carrier offer.
type NewOffer struct {
	CarrierID string `json:"carrier_id"`
	Price     int64  `json:"price"`
}

// NewTransition is the request body for shipment and offer status changes.
type NewTransition struct {
	ActorID    string `json:"actor_id"`
	ActorRole  string `json:"actor_role"`
	NextStatus string `json:"next_status"`
	Notes      string `json:"notes"`
}

// Shipment is the shipment representation returned by the API.
type Shipment struct {
	ID          string  `json:"id"`
	ShipperID   string  `json:"shipper_id"`
	CarrierID   *string `json:"carrier_id"`
	Status      string  `json:"status"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	WeightKg    int     `json:"weight_kg"`
	Price       int64   `json:"price"`
}

// Offer is the offer representation returned by the API.
type Offer struct {
	ID         string `json:"id"`
	ShipmentID string `json:"shipment_id"`
	CarrierID  string `json:"carrier_id"`
	Status     string `json:"status"`
	Price      int64  `json:"price"`
}

// HistoryRecord is one entry of a subject's transition trail.
type HistoryRecord struct {
	ID          string    `json:"id"`
	SubjectType string    `json:"subject_type"`
	SubjectID   string    `json:"subject_id"`
	ActorID     string    `json:"actor_id"`
	ActorRole   string    `json:"actor_role"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}
