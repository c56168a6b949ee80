//go:build unit

package builder

import (
	"time"

	"venue-booking/internal/domain/venue"

	"github.com/google/uuid"
)

type VenueBuilder struct {
	ID          uuid.UUID
	VendorID    uuid.UUID
	Title       string
	Price       int64
	Capacity    int
	TotalSlots  int
	TimesBooked int
	IsActive    bool
	Status      venue.PublicationStatus
	DeletedAt   *time.Time
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:         uuid.New(),
		VendorID:   uuid.New(),
		Title:      "Riverside Garden Hall",
		Price:      50_000_000,
		Capacity:   200,
		TotalSlots: 4,
		IsActive:   true,
		Status:     venue.StatusPublished,
	}
}

func (v *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(v)
	return v
}

func (v *VenueBuilder) BuildDomain() *venue.Venue {
	return venue.Reconstruct(
		v.ID, v.VendorID, v.Title, v.Price, v.Capacity,
		v.TotalSlots, v.TimesBooked, v.IsActive, v.Status, v.DeletedAt,
	)
}

// Fluent builder methods
func (v *VenueBuilder) WithPrice(price int64) *VenueBuilder {
	v.Price = price
	return v
}

func (v *VenueBuilder) WithCapacity(capacity int) *VenueBuilder {
	v.Capacity = capacity
	return v
}

func (v *VenueBuilder) WithStatus(status venue.PublicationStatus) *VenueBuilder {
	v.Status = status
	return v
}

func (v *VenueBuilder) WithInactive() *VenueBuilder {
	v.IsActive = false
	return v
}

func (v *VenueBuilder) WithDeleted() *VenueBuilder {
	now := time.Now()
	v.DeletedAt = &now
	return v
}
