package models

import "time"

// Booking represents a committed reservation of one slot. Bookings are never
// mutated or deleted by this service.
type Booking struct {
	ID              string    `bson:"id" json:"id"`                           // Unique booking identifier (UUID)
	Email           string    `bson:"email" json:"email"`                     // Requester's account email
	Treatment       string    `bson:"treatment" json:"treatment"`             // Treatment name, matches a SlotTemplate.Name
	AppointmentDate string    `bson:"appointmentDate" json:"appointmentDate"` // Date label, e.g. "2024-01-05"
	Slot            string    `bson:"slot" json:"slot"`                       // Time label taken from the template
	PatientName     string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingInput is the POST /bookings payload.
type BookingInput struct {
	Email           string `json:"email" binding:"required"`
	Treatment       string `json:"treatment" binding:"required"`
	AppointmentDate string `json:"appointmentDate" binding:"required"`
	Slot            string `json:"slot" binding:"required"`
	PatientName     string `json:"patientName"`
	Phone           string `json:"phone"`
}

// BookingResult is the arbitration outcome. Acknowledged=false with a message
// is a domain-level rejection the caller must inspect, not a transport error.
type BookingResult struct {
	Acknowledged bool     `json:"acknowledged"`
	Message      string   `json:"message,omitempty"`
	Booking      *Booking `json:"booking,omitempty"`
}
