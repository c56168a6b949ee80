package user

import "github.com/google/uuid"

// Operation is a booking-engine capability subject to authorization.
type Operation string

const (
	OpViewBooking        Operation = "booking:view"
	OpCancelBooking      Operation = "booking:cancel"
	OpDeleteBooking      Operation = "booking:delete"
	OpConfirmBooking     Operation = "booking:confirm"
	OpRejectBooking      Operation = "booking:reject"
	OpCompleteBooking    Operation = "booking:complete"
	OpViewVendorBookings Operation = "vendor:view-bookings"
	OpViewVendorStats    Operation = "vendor:view-stats"
)

// Actor is the authenticated caller as resolved by the access gate.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// BookingResource carries the ownership facts a policy decision needs:
// who requested the booking and which vendor owns the venue.
type BookingResource struct {
	RequesterID uuid.UUID
	VendorID    uuid.UUID
}

// Can decides whether actor may perform op on the resource. Admins may do
// everything; vendors act on their own venues; users act on their own
// bookings. Evaluated before any mutation.
func Can(op Operation, actor Actor, res BookingResource) bool {
	if actor.IsAdmin() {
		return true
	}

	switch op {
	case OpViewBooking:
		return actor.ID == res.RequesterID || actor.ID == res.VendorID
	case OpCancelBooking, OpDeleteBooking:
		return actor.ID == res.RequesterID
	case OpConfirmBooking, OpRejectBooking, OpCompleteBooking:
		return actor.ID == res.VendorID
	case OpViewVendorBookings, OpViewVendorStats:
		return actor.ID == res.VendorID
	default:
		return false
	}
}
