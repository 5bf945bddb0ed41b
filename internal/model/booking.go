package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the lifecycle state of a booking.
// PENDING -> CONFIRMED -> COMPLETED, with CANCELLED reachable from any
// non-terminal state. COMPLETED and CANCELLED are terminal.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined out of s.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CancelWindow is how long after creation a requester may self-cancel.
const CancelWindow = 24 * time.Hour

// PackageSnapshot is the service package copied into a booking at creation
// time. It is a snapshot, not a live reference: later catalog edits must
// not alter historical bookings.
type PackageSnapshot struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Duration int             `json:"duration"` // minutes
	Features []string        `json:"features"`
}

// Booking is one consultation request. Contact doubles as the de-facto
// link to the requesting user (phone or WeChat); UserID is the explicit
// reference filled in when the booking was made by a logged-in user,
// with contact matching kept as the fallback for guest bookings.
type Booking struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId,omitempty"`
	Name           string          `json:"name"`
	Contact        string          `json:"contact"`
	Topic          string          `json:"topic"`
	Mode           string          `json:"mode"` // online, offline, either
	Note           string          `json:"note"`
	ServicePackage PackageSnapshot `json:"servicePackage"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	Status         BookingStatus   `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      *time.Time      `json:"updatedAt,omitempty"`
	ScheduledTime  *time.Time      `json:"scheduledTime,omitempty"`
	AdminNotes     string          `json:"adminNotes,omitempty"`
	UserNotes      string          `json:"userNotes,omitempty"`
	CancelledAt    *time.Time      `json:"cancelledAt,omitempty"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
}

func (b *Booking) GetID() string   { return b.ID }
func (b *Booking) SetID(id string) { b.ID = id }

// CanCancel reports whether the requester may still self-cancel at the
// given instant: never once the booking is terminal, and otherwise only
// within CancelWindow of creation.
func (b *Booking) CanCancel(now time.Time) bool {
	if b.Status.Terminal() {
		return false
	}
	return now.Sub(b.CreatedAt) <= CancelWindow
}

// BookingStats is the raw aggregate over every stored booking. TotalValue
// sums totalPrice across ALL bookings including cancelled ones; revenue
// figures that exclude cancellations are computed by callers.
type BookingStats struct {
	Total      int             `json:"total"`
	Pending    int             `json:"pending"`
	TotalValue decimal.Decimal `json:"totalValue"`
	Topics     map[string]int  `json:"topics"`
	Modes      map[string]int  `json:"modes"`
}
