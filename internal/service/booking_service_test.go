package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/model"
	"backend/internal/storage"
)

func newBookingService(t *testing.T) (BookingService, *storage.BookingStore, *storage.ConfigStore) {
	t.Helper()
	dir := t.TempDir()
	bookings, err := storage.OpenBookingStore(dir)
	require.NoError(t, err)
	configs, err := storage.OpenConfigStore(dir)
	require.NoError(t, err)
	_, err = storage.SeedDefaultConfigs(configs)
	require.NoError(t, err)
	// nil hub: no dashboard notifications under test
	return NewBookingService(bookings, configs, nil), bookings, configs
}

func createBooking(t *testing.T, svc BookingService, contact, packageID string) *model.Booking {
	t.Helper()
	b, err := svc.CreateBooking(CreateBookingRequest{
		Name:      "张三",
		Contact:   contact,
		Topic:     "情绪压力",
		Mode:      "online",
		PackageID: packageID,
	}, "")
	require.NoError(t, err)
	return b
}

func TestCreateBookingSnapshotsPackage(t *testing.T) {
	svc, _, configs := newBookingService(t)

	b := createBooking(t, svc, "13800138000", "basic")
	assert.Equal(t, model.BookingPending, b.Status)
	assert.Equal(t, "basic", b.ServicePackage.ID)
	assert.True(t, b.TotalPrice.Equal(decimal.NewFromInt(299)), "got %s", b.TotalPrice)
	assert.Greater(t, b.ServicePackage.Duration, 0)

	// Editing the catalog afterwards must not touch the stored snapshot.
	for _, item := range configs.GetByType(model.ConfigServicePackage) {
		if item.Extra != nil && item.Extra.PackageID == "basic" {
			_, err := configs.UpdateConfig(item.ID, func(c *model.ConfigItem) {
				raised := decimal.NewFromInt(999)
				c.Extra.Price = &raised
			})
			require.NoError(t, err)
		}
	}
	views := svc.UserBookings("13800138000")
	require.Len(t, views, 1)
	assert.True(t, views[0].TotalPrice.Equal(decimal.NewFromInt(299)))
}

func TestCreateBookingUnknownPackage(t *testing.T) {
	svc, _, _ := newBookingService(t)

	_, err := svc.CreateBooking(CreateBookingRequest{
		Name: "张三", Contact: "13800138000", Topic: "x", Mode: "online",
		PackageID: "no-such-package",
	}, "")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreateBookingLinksUser(t *testing.T) {
	svc, bookings, _ := newBookingService(t)

	b, err := svc.CreateBooking(CreateBookingRequest{
		Name: "张三", Contact: "13800138000", Topic: "x", Mode: "online",
		PackageID: "standard",
	}, "user-42")
	require.NoError(t, err)
	assert.Equal(t, "user-42", b.UserID)

	stored, err := bookings.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-42", stored.UserID)
}

func TestUserBookingsCancelFlag(t *testing.T) {
	svc, bookings, _ := newBookingService(t)

	fresh := createBooking(t, svc, "13800138000", "basic")
	old := createBooking(t, svc, "13800138000", "standard")
	_, err := bookings.Update(old.ID, func(b *model.Booking) {
		b.CreatedAt = time.Now().Add(-25 * time.Hour)
	})
	require.NoError(t, err)

	views := svc.UserBookings("13800138000")
	require.Len(t, views, 2)
	byID := map[string]BookingView{}
	for _, v := range views {
		byID[v.ID] = v
	}
	assert.True(t, byID[fresh.ID].CanCancel)
	assert.False(t, byID[old.ID].CanCancel)
}

func TestCancelOwn(t *testing.T) {
	svc, _, _ := newBookingService(t)

	b := createBooking(t, svc, "13800138000", "basic")

	_, err := svc.CancelOwn(b.ID, "13900139000")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.CancelOwn("missing", "13800138000")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	cancelled, err := svc.CancelOwn(b.ID, "13800138000")
	require.NoError(t, err)
	assert.Equal(t, model.BookingCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	// A second cancellation hits the terminal state.
	_, err = svc.CancelOwn(b.ID, "13800138000")
	assert.ErrorIs(t, err, ErrCancelWindowClosed)
}

func TestCancelOwnWindowClosed(t *testing.T) {
	svc, bookings, _ := newBookingService(t)

	b := createBooking(t, svc, "13800138000", "basic")
	_, err := bookings.Update(b.ID, func(b *model.Booking) {
		b.CreatedAt = time.Now().Add(-25 * time.Hour)
	})
	require.NoError(t, err)

	_, err = svc.CancelOwn(b.ID, "13800138000")
	assert.ErrorIs(t, err, ErrCancelWindowClosed)
}

func TestUpdateStatusLifecycle(t *testing.T) {
	svc, _, _ := newBookingService(t)

	b := createBooking(t, svc, "13800138000", "premium")

	_, err := svc.UpdateStatus(b.ID, UpdateStatusRequest{Status: "SHIPPED"})
	assert.Error(t, err)

	confirmed, err := svc.UpdateStatus(b.ID, UpdateStatusRequest{Status: model.BookingConfirmed, AdminNotes: "已电话确认"})
	require.NoError(t, err)
	assert.Equal(t, model.BookingConfirmed, confirmed.Status)
	assert.Equal(t, "已电话确认", confirmed.AdminNotes)

	completed, err := svc.UpdateStatus(b.ID, UpdateStatusRequest{Status: model.BookingCompleted})
	require.NoError(t, err)
	assert.NotNil(t, completed.CompletedAt)

	// Terminal states reject further transitions.
	_, err = svc.UpdateStatus(b.ID, UpdateStatusRequest{Status: model.BookingPending})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSchedule(t *testing.T) {
	svc, _, _ := newBookingService(t)

	b := createBooking(t, svc, "13800138000", "basic")
	at := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

	scheduled, err := svc.Schedule(b.ID, ScheduleRequest{ScheduledTime: at})
	require.NoError(t, err)
	require.NotNil(t, scheduled.ScheduledTime)
	assert.True(t, scheduled.ScheduledTime.Equal(at))

	_, err = svc.Schedule("missing", ScheduleRequest{ScheduledTime: at})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStatisticsRevenueExcludesCancelled(t *testing.T) {
	svc, _, _ := newBookingService(t)

	createBooking(t, svc, "13800138000", "standard") // 499
	createBooking(t, svc, "13900139000", "basic")    // 299

	cancelled := createBooking(t, svc, "13700137000", "premium") // 799
	_, err := svc.CancelOwn(cancelled.ID, "13700137000")
	require.NoError(t, err)

	stats := svc.Statistics()
	assert.Equal(t, 3, stats.Total)
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(1597)),
		"raw total keeps cancelled bookings, got %s", stats.TotalValue)
	assert.True(t, stats.Revenue.Equal(decimal.NewFromInt(798)),
		"revenue must drop the cancelled booking, got %s", stats.Revenue)
	assert.Equal(t, 2, stats.Pending)
}

func TestDeleteBooking(t *testing.T) {
	svc, bookings, _ := newBookingService(t)

	b := createBooking(t, svc, "13800138000", "basic")

	deleted, err := svc.DeleteBooking(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, deleted.ID)
	assert.Equal(t, 0, bookings.Count())

	_, err = svc.DeleteBooking(b.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
