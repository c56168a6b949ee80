package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"venue-booking/internal/pkg/errs"
)

// TimeOfDay is a wall-clock time without a date, used for slot boundaries
// and for the legacy start-time request format.
type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.Newf("time of day out of range: %02d:%02d", hour, minute)
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// ParseTimeOfDay accepts "10", "10:00" and "10:00:00". Seconds are
// discarded. The bare-hour form exists for legacy clients.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeOfDay{}, errs.New("empty time string")
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return TimeOfDay{}, errs.Newf("unparsable time string: %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, errs.Wrapf(err, "unparsable hour in %q", s)
	}

	minute := 0
	if len(parts) >= 2 {
		minute, err = strconv.Atoi(parts[1])
		if err != nil {
			return TimeOfDay{}, errs.Wrapf(err, "unparsable minute in %q", s)
		}
	}

	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	if t.hour != other.hour {
		return t.hour < other.hour
	}
	return t.minute < other.minute
}

// On anchors the time of day onto a calendar date.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.hour, t.minute, 0, 0, date.Location())
}

// TimeSlot is one of the four fixed two-hour windows a venue offers per
// day. The set is defined once at startup and never changes.
type TimeSlot struct {
	index int
	start TimeOfDay
	end   TimeOfDay
	label string
}

var allSlots = [...]TimeSlot{
	{index: 0, start: TimeOfDay{hour: 10}, end: TimeOfDay{hour: 12}, label: "10:00 - 12:00"},
	{index: 1, start: TimeOfDay{hour: 12}, end: TimeOfDay{hour: 14}, label: "12:00 - 14:00"},
	{index: 2, start: TimeOfDay{hour: 14}, end: TimeOfDay{hour: 16}, label: "14:00 - 16:00"},
	{index: 3, start: TimeOfDay{hour: 16}, end: TimeOfDay{hour: 18}, label: "16:00 - 18:00"},
}

func (s TimeSlot) Index() int       { return s.index }
func (s TimeSlot) Start() TimeOfDay { return s.start }
func (s TimeSlot) End() TimeOfDay   { return s.end }
func (s TimeSlot) Label() string    { return s.label }

func (s TimeSlot) Duration() time.Duration {
	return time.Duration(s.end.hour-s.start.hour)*time.Hour +
		time.Duration(s.end.minute-s.start.minute)*time.Minute
}

// Contains reports whether t falls within [start, end).
func (s TimeSlot) Contains(t TimeOfDay) bool {
	return !t.Before(s.start) && t.Before(s.end)
}

func AllSlots() []TimeSlot {
	slots := make([]TimeSlot, len(allSlots))
	copy(slots, allSlots[:])
	return slots
}

func TotalSlots() int {
	return len(allSlots)
}

func SlotFromIndex(index int) (TimeSlot, error) {
	if index < 0 || index >= len(allSlots) {
		return TimeSlot{}, errs.Mark(
			errs.Newf("slot index %d out of range [0, %d)", index, len(allSlots)),
			errs.ErrInvalidSlotIndex,
		)
	}
	return allSlots[index], nil
}

// SlotFromStartTime resolves a legacy exact-start-time request to its
// slot. Only the four boundary times match.
func SlotFromStartTime(start TimeOfDay) (TimeSlot, error) {
	for _, s := range allSlots {
		if s.start == start {
			return s, nil
		}
	}
	return TimeSlot{}, errs.Mark(
		errs.Newf("start time %s does not begin any slot", start),
		errs.ErrUnmatchedStartTime,
	)
}

// SlotContaining finds the slot whose window covers t, for callers that
// send mid-window times.
func SlotContaining(t TimeOfDay) (TimeSlot, bool) {
	for _, s := range allSlots {
		if s.Contains(t) {
			return s, true
		}
	}
	return TimeSlot{}, false
}
