// Package venue exposes the read-mostly catalog view the booking engine
// depends on. Catalog management itself lives outside this service; the
// only write the engine performs here is the times-booked counter.
package venue

import (
	"time"

	"github.com/google/uuid"
)

type PublicationStatus string

const (
	StatusPending   PublicationStatus = "PENDING"
	StatusPublished PublicationStatus = "PUBLISHED"
	StatusRejected  PublicationStatus = "REJECTED"
	StatusDraft     PublicationStatus = "DRAFT"
)

func (s PublicationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPublished, StatusRejected, StatusDraft:
		return true
	default:
		return false
	}
}

// DefaultTotalSlots is the number of bookable windows per day when the
// catalog row does not override it.
const DefaultTotalSlots = 4

type Venue struct {
	id          uuid.UUID
	vendorID    uuid.UUID
	title       string
	price       int64
	capacity    int
	totalSlots  int
	timesBooked int
	active      bool
	status      PublicationStatus
	deletedAt   *time.Time
}

// Reconstruct rebuilds a Venue from persisted state without validation.
// A stored totalSlots of zero falls back to DefaultTotalSlots.
func Reconstruct(
	id uuid.UUID,
	vendorID uuid.UUID,
	title string,
	price int64,
	capacity int,
	totalSlots int,
	timesBooked int,
	active bool,
	status PublicationStatus,
	deletedAt *time.Time,
) *Venue {
	if totalSlots <= 0 {
		totalSlots = DefaultTotalSlots
	}
	return &Venue{
		id:          id,
		vendorID:    vendorID,
		title:       title,
		price:       price,
		capacity:    capacity,
		totalSlots:  totalSlots,
		timesBooked: timesBooked,
		active:      active,
		status:      status,
		deletedAt:   deletedAt,
	}
}

func (v *Venue) ID() uuid.UUID             { return v.id }
func (v *Venue) VendorID() uuid.UUID       { return v.vendorID }
func (v *Venue) Title() string             { return v.title }
func (v *Venue) Price() int64              { return v.price }
func (v *Venue) Capacity() int             { return v.capacity }
func (v *Venue) TotalSlots() int           { return v.totalSlots }
func (v *Venue) TimesBooked() int          { return v.timesBooked }
func (v *Venue) IsActive() bool            { return v.active }
func (v *Venue) Status() PublicationStatus { return v.status }
func (v *Venue) DeletedAt() *time.Time     { return v.deletedAt }

// CanAcceptBookings gates booking creation: the venue must be active,
// not soft-deleted, and published.
func (v *Venue) CanAcceptBookings() bool {
	return v.active && v.deletedAt == nil && v.status == StatusPublished
}

// HasCapacityFor reports whether guests fits within the venue capacity.
// A non-positive capacity means the catalog row never set one and no
// limit is enforced.
func (v *Venue) HasCapacityFor(guests int) bool {
	if v.capacity <= 0 {
		return true
	}
	return guests <= v.capacity
}
