package models

// SlotTemplate is one catalog entry: the full set of bookable time labels for
// a treatment, independent of date. Templates are seeded externally and are
// read-only to this service.
type SlotTemplate struct {
	ID    string   `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string   `bson:"name" json:"name"`
	Slots []string `bson:"slots" json:"slots"`
}

// TreatmentAvailability is one entry of the availability response: the
// template's slots minus those already booked on the requested date,
// in the template's original order.
type TreatmentAvailability struct {
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
}
