package storage

import (
	"path/filepath"
	"sort"
	"time"

	"backend/internal/model"

	"github.com/shopspring/decimal"
)

// BookingStore persists bookings in bookings.json. Status stamping lives
// here; which transitions are legal is enforced one layer up, so existing
// data with odd histories can still be mutated by an admin.
type BookingStore struct {
	*Store[model.Booking, *model.Booking]
}

// OpenBookingStore opens or creates dir/bookings.json.
func OpenBookingStore(dir string) (*BookingStore, error) {
	s, err := Open[model.Booking, *model.Booking](filepath.Join(dir, "bookings.json"))
	if err != nil {
		return nil, err
	}
	return &BookingStore{Store: s}, nil
}

// Create persists b as a fresh booking: status is forced to PENDING and
// CreatedAt to now regardless of what the caller filled in, and the
// lifecycle timestamps are cleared.
func (s *BookingStore) Create(b model.Booking) (model.Booking, error) {
	b.Status = model.BookingPending
	b.CreatedAt = time.Now()
	b.UpdatedAt = nil
	b.CancelledAt = nil
	b.CompletedAt = nil
	return s.Add(b)
}

// UpdateStatus sets the status and UpdatedAt, stamps CancelledAt or
// CompletedAt when the target status asks for it, and overwrites the
// admin note when one is supplied.
func (s *BookingStore) UpdateStatus(id string, status model.BookingStatus, adminNote string) (model.Booking, error) {
	return s.Update(id, func(b *model.Booking) {
		now := time.Now()
		b.Status = status
		b.UpdatedAt = &now
		switch status {
		case model.BookingCancelled:
			b.CancelledAt = &now
		case model.BookingCompleted:
			b.CompletedAt = &now
		}
		if adminNote != "" {
			b.AdminNotes = adminNote
		}
	})
}

// SetScheduledTime sets the agreed consultation time independently of the
// booking status.
func (s *BookingStore) SetScheduledTime(id string, at time.Time, adminNote string) (model.Booking, error) {
	return s.Update(id, func(b *model.Booking) {
		now := time.Now()
		b.ScheduledTime = &at
		b.UpdatedAt = &now
		if adminNote != "" {
			b.AdminNotes = adminNote
		}
	})
}

// GetByStatus returns every booking currently in the given status.
func (s *BookingStore) GetByStatus(status model.BookingStatus) []model.Booking {
	return s.Find(func(b model.Booking) bool { return b.Status == status })
}

// GetByUser returns the bookings whose contact matches, newest first.
func (s *BookingStore) GetByUser(contact string) []model.Booking {
	out := s.Find(func(b model.Booking) bool { return b.Contact == contact })
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// DeleteByUser removes every booking whose contact matches and returns
// the removed records. The file is rewritten once after the bulk removal,
// not once per record.
func (s *BookingStore) DeleteByUser(contact string) ([]model.Booking, error) {
	var removed []model.Booking
	err := s.mutateAll(func(items *[]model.Booking) {
		kept := make([]model.Booking, 0, len(*items))
		for _, b := range *items {
			if b.Contact == contact {
				removed = append(removed, b)
			} else {
				kept = append(kept, b)
			}
		}
		*items = kept
	})
	return removed, err
}

// Stats aggregates over all bookings. TotalValue is a raw sum that does
// not exclude cancelled bookings; dashboard revenue applies that filter
// at the call site.
func (s *BookingStore) Stats() model.BookingStats {
	stats := model.BookingStats{
		TotalValue: decimal.Zero,
		Topics:     map[string]int{},
		Modes:      map[string]int{},
	}
	for _, b := range s.GetAll() {
		stats.Total++
		if b.Status == model.BookingPending {
			stats.Pending++
		}
		stats.TotalValue = stats.TotalValue.Add(b.TotalPrice)
		stats.Topics[b.Topic]++
		stats.Modes[b.Mode]++
	}
	return stats
}
