package handlers

import "doctorportal/services/auth"

// HandlerBundle collects the wired handlers plus the gate the route
// registration needs for its auth middleware.
type HandlerBundle struct {
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Auth         *AuthHandler
	User         *UserHandler
	Gate         auth.AccessGate
}
