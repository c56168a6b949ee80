package errs

import "errors"

// Sentinel errors shared by the usecase layers. Handlers translate each of
// these into a distinct HTTP status and message.
var (
	// Venue errors
	ErrVenueNotFound    = errors.New("venue not found")
	ErrVenueUnavailable = errors.New("venue is not available for booking")

	// Scheduling input errors
	ErrMissingBookingDate    = errors.New("booking date is required")
	ErrNoUsableTimeSpecified = errors.New("either a slot index or a start time must be provided")
	ErrUnmatchedStartTime    = errors.New("start time does not match any bookable slot")
	ErrInvalidSlotIndex      = errors.New("invalid slot index")

	// Booking errors
	ErrBookingNotFound        = errors.New("booking not found")
	ErrSlotAlreadyBooked      = errors.New("time slot is already booked")
	ErrInvalidUnitPrice       = errors.New("unit price must be positive")
	ErrInvalidDiscount        = errors.New("discount exceeds total amount")
	ErrCapacityExceeded       = errors.New("guest count exceeds venue capacity")
	ErrInvalidStateTransition = errors.New("invalid booking state transition")

	// Authorization errors
	ErrUnauthorized = errors.New("not authorized to perform this operation")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
