package booking

import (
	"strings"

	"venue-booking/internal/pkg/errs"
)

// Money is an amount in Vietnamese dong. VND has no subunit, so a plain
// integer count of dong is exact.
type Money struct {
	amount int64
}

func NewMoney(amount int64) Money {
	if amount < 0 {
		amount = 0
	}
	return Money{amount: amount}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) IsPositive() bool {
	return m.amount > 0
}

func (m Money) Mul(n int) Money {
	return Money{amount: m.amount * int64(n)}
}

func (m Money) Sub(other Money) Money {
	return NewMoney(m.amount - other.amount)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// CustomerContact is the walk-in contact details attached to a booking.
// Bookings are made on behalf of a named person who may differ from the
// authenticated account holder.
type CustomerContact struct {
	name  string
	phone string
	email *string
}

func NewCustomerContact(name, phone string, email *string) (CustomerContact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return CustomerContact{}, errs.New("customer name is required")
	}
	if phone == "" {
		return CustomerContact{}, errs.New("customer phone is required")
	}
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" {
			email = nil
		} else {
			email = &trimmed
		}
	}
	return CustomerContact{name: name, phone: phone, email: email}, nil
}

func (c CustomerContact) Name() string   { return c.name }
func (c CustomerContact) Phone() string  { return c.phone }
func (c CustomerContact) Email() *string { return c.email }

// Notes holds the free-text extras a customer can attach.
type Notes struct {
	AdditionalServices *string
	SpecialRequests    *string
}

// ReconstructCustomerContact rebuilds contact details from persisted
// state without validation.
func ReconstructCustomerContact(name, phone string, email *string) CustomerContact {
	return CustomerContact{name: name, phone: phone, email: email}
}
