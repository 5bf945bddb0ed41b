package service

import (
	"fmt"
	"log"
	"time"

	"backend/internal/model"
	"backend/internal/storage"
	"backend/internal/websocket"

	"github.com/shopspring/decimal"
)

// DTOs for request validation
type CreateBookingRequest struct {
	Name      string `json:"name" binding:"required"`
	Contact   string `json:"contact" binding:"required"`
	Topic     string `json:"topic" binding:"required"`
	Mode      string `json:"mode" binding:"required"`
	Note      string `json:"note"`
	PackageID string `json:"packageId" binding:"required"`
}

type UpdateStatusRequest struct {
	Status     model.BookingStatus `json:"status" binding:"required"`
	AdminNotes string              `json:"adminNotes"`
}

type ScheduleRequest struct {
	ScheduledTime time.Time `json:"scheduledTime" binding:"required"`
	AdminNotes    string    `json:"adminNotes"`
}

// BookingView decorates a stored booking with the cancellation flag the
// client needs to render the cancel button.
type BookingView struct {
	model.Booking
	CanCancel bool `json:"canCancel"`
}

// DashboardStats carries both revenue figures the back office shows:
// TotalValue is the raw sum over every booking including cancelled ones,
// Revenue excludes cancelled bookings. The two disagree on purpose.
type DashboardStats struct {
	model.BookingStats
	Revenue decimal.Decimal `json:"revenue"`
}

// BookingService owns booking creation, the user-facing cancellation
// rule and the admin lifecycle operations. Status changes are pushed to
// connected admin dashboards through the hub.
type BookingService interface {
	CreateBooking(req CreateBookingRequest, userID string) (*model.Booking, error)
	AllBookings() []model.Booking
	UserBookings(contact string) []BookingView
	CancelOwn(bookingID, contact string) (*model.Booking, error)
	UpdateStatus(id string, req UpdateStatusRequest) (*model.Booking, error)
	Schedule(id string, req ScheduleRequest) (*model.Booking, error)
	DeleteBooking(id string) (*model.Booking, error)
	Statistics() DashboardStats
}

type bookingService struct {
	bookings *storage.BookingStore
	configs  *storage.ConfigStore
	hub      *websocket.Hub
}

// NewBookingService wires the booking store, the config store used to
// resolve service packages, and the admin event hub (nil disables
// notifications, e.g. in tests).
func NewBookingService(bookings *storage.BookingStore, configs *storage.ConfigStore, hub *websocket.Hub) BookingService {
	return &bookingService{bookings: bookings, configs: configs, hub: hub}
}

func (s *bookingService) notify(event string, b *model.Booking) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastEvent(event, b)
}

// resolvePackage looks the package up in the active catalog and copies it
// into a snapshot. The snapshot, not the catalog, is what the booking
// keeps: later price edits never touch existing bookings.
func (s *bookingService) resolvePackage(packageID string) (model.PackageSnapshot, error) {
	for _, item := range s.configs.GetByType(model.ConfigServicePackage) {
		if item.Extra == nil {
			continue
		}
		if item.Extra.PackageID == packageID || item.ID == packageID {
			snap := model.PackageSnapshot{
				ID:       item.Extra.PackageID,
				Name:     item.Title,
				Duration: item.Extra.Duration,
				Features: append([]string(nil), item.Extra.Features...),
			}
			if item.Extra.Price != nil {
				snap.Price = *item.Extra.Price
			}
			return snap, nil
		}
	}
	return model.PackageSnapshot{}, fmt.Errorf("unknown service package %q: %w", packageID, storage.ErrNotFound)
}

func (s *bookingService) CreateBooking(req CreateBookingRequest, userID string) (*model.Booking, error) {
	snap, err := s.resolvePackage(req.PackageID)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookings.Create(model.Booking{
		UserID:         userID,
		Name:           req.Name,
		Contact:        req.Contact,
		Topic:          req.Topic,
		Mode:           req.Mode,
		Note:           req.Note,
		ServicePackage: snap,
		TotalPrice:     snap.Price,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("new booking: id=%s package=%s total=%s", booking.ID, snap.ID, booking.TotalPrice)
	s.notify("booking.created", &booking)
	return &booking, nil
}

func (s *bookingService) AllBookings() []model.Booking {
	return s.bookings.GetAll()
}

func (s *bookingService) UserBookings(contact string) []BookingView {
	now := time.Now()
	records := s.bookings.GetByUser(contact)
	views := make([]BookingView, 0, len(records))
	for _, b := range records {
		views = append(views, BookingView{Booking: b, CanCancel: b.CanCancel(now)})
	}
	return views
}

// CancelOwn cancels the requester's own booking, enforcing both ownership
// and the 24-hour window.
func (s *bookingService) CancelOwn(bookingID, contact string) (*model.Booking, error) {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Contact != contact {
		return nil, ErrForbidden
	}
	if !booking.CanCancel(time.Now()) {
		return nil, ErrCancelWindowClosed
	}

	updated, err := s.bookings.UpdateStatus(bookingID, model.BookingCancelled, "cancelled by user")
	if err != nil {
		return nil, err
	}
	log.Printf("booking cancelled by user: %s", bookingID)
	s.notify("booking.updated", &updated)
	return &updated, nil
}

// UpdateStatus is the admin transition. The store itself stamps any
// status it is handed; the terminal-state check lives here so that rule
// stays visible in one place.
func (s *bookingService) UpdateStatus(id string, req UpdateStatusRequest) (*model.Booking, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("invalid booking status %q", req.Status)
	}
	current, err := s.bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current.Status.Terminal() && req.Status != current.Status {
		return nil, fmt.Errorf("%w: %s is final", ErrInvalidTransition, current.Status)
	}

	updated, err := s.bookings.UpdateStatus(id, req.Status, req.AdminNotes)
	if err != nil {
		return nil, err
	}
	log.Printf("booking status updated: %s -> %s", id, req.Status)
	s.notify("booking.updated", &updated)
	return &updated, nil
}

func (s *bookingService) Schedule(id string, req ScheduleRequest) (*model.Booking, error) {
	updated, err := s.bookings.SetScheduledTime(id, req.ScheduledTime, req.AdminNotes)
	if err != nil {
		return nil, err
	}
	log.Printf("booking scheduled: %s -> %s", id, req.ScheduledTime.Format(time.RFC3339))
	s.notify("booking.updated", &updated)
	return &updated, nil
}

func (s *bookingService) DeleteBooking(id string) (*model.Booking, error) {
	deleted, err := s.bookings.Delete(id)
	if err != nil {
		return nil, err
	}
	log.Printf("booking deleted: %s", id)
	return &deleted, nil
}

// Statistics returns the raw store aggregate plus dashboard revenue,
// which counts every booking except cancelled ones.
func (s *bookingService) Statistics() DashboardStats {
	stats := DashboardStats{BookingStats: s.bookings.Stats(), Revenue: decimal.Zero}
	for _, b := range s.bookings.GetAll() {
		if b.Status != model.BookingCancelled {
			stats.Revenue = stats.Revenue.Add(b.TotalPrice)
		}
	}
	return stats
}
