//go:build unit

package user_test

import (
	"testing"

	"venue-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	requester := uuid.New()
	vendor := uuid.New()
	stranger := uuid.New()

	res := user.BookingResource{RequesterID: requester, VendorID: vendor}

	asUser := func(id uuid.UUID) user.Actor { return user.Actor{ID: id, Role: user.RoleUser} }
	asVendor := func(id uuid.UUID) user.Actor { return user.Actor{ID: id, Role: user.RoleVendor} }
	admin := user.Actor{ID: uuid.New(), Role: user.RoleAdmin}

	cases := []struct {
		name  string
		op    user.Operation
		actor user.Actor
		want  bool
	}{
		{name: "requester views own booking", op: user.OpViewBooking, actor: asUser(requester), want: true},
		{name: "vendor views booking on own venue", op: user.OpViewBooking, actor: asVendor(vendor), want: true},
		{name: "stranger cannot view", op: user.OpViewBooking, actor: asUser(stranger), want: false},

		{name: "requester cancels own booking", op: user.OpCancelBooking, actor: asUser(requester), want: true},
		{name: "vendor cannot cancel customer booking", op: user.OpCancelBooking, actor: asVendor(vendor), want: false},
		{name: "requester deletes own booking", op: user.OpDeleteBooking, actor: asUser(requester), want: true},

		{name: "vendor confirms", op: user.OpConfirmBooking, actor: asVendor(vendor), want: true},
		{name: "requester cannot confirm", op: user.OpConfirmBooking, actor: asUser(requester), want: false},
		{name: "vendor rejects", op: user.OpRejectBooking, actor: asVendor(vendor), want: true},
		{name: "vendor completes", op: user.OpCompleteBooking, actor: asVendor(vendor), want: true},
		{name: "other vendor cannot complete", op: user.OpCompleteBooking, actor: asVendor(stranger), want: false},

		{name: "vendor lists own bookings", op: user.OpViewVendorBookings, actor: asVendor(vendor), want: true},
		{name: "vendor views own stats", op: user.OpViewVendorStats, actor: asVendor(vendor), want: true},
		{name: "user cannot view vendor stats", op: user.OpViewVendorStats, actor: asUser(requester), want: false},

		{name: "admin does everything", op: user.OpDeleteBooking, actor: admin, want: true},
		{name: "unknown operation denied", op: user.Operation("booking:unknown"), actor: asUser(requester), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, user.Can(tc.op, tc.actor, res))
		})
	}
}
