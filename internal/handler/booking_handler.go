package handler

import (
	"errors"
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/internal/storage"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler sets up the routing dependencies for booking endpoints
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *BookingHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Public booking submission; the account link is attached when a
	// valid token accompanies the request.
	router.POST("/book", middleware.OptionalAuth(), h.CreateBooking)

	// Member routes
	my := router.Group("/my", middleware.RequireAuth())
	{
		my.GET("/bookings", h.MyBookings)
		my.PUT("/bookings/:id/cancel", h.CancelBooking)
	}

	// Admin routes
	router.GET("/book", middleware.RequireAdmin(), h.ListBookings)
	router.GET("/statistics", middleware.RequireAdmin(), h.Statistics)
	bookings := router.Group("/bookings", middleware.RequireAdmin())
	{
		bookings.PUT("/:id/status", h.UpdateStatus)
		bookings.PATCH("/:id/schedule", h.Schedule)
		bookings.DELETE("/:id", h.DeleteBooking)
	}
}

// CreateBooking handles POST /book submissions from the booking form
// @Summary      Create booking
// @Description  Submits a consultation booking for the chosen service package
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateBookingRequest  true  "Booking Payload"
// @Success      201      {object}  response.Response{data=model.Booking}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /book [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid request payload: "+err.Error()))
		return
	}

	booking, err := h.bookingService.CreateBooking(req, c.GetString("userID"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Fail("Service package not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.OK(booking, "预约提交成功"))
}

// ListBookings handles GET /book for the admin dashboard
// @Summary      List bookings
// @Description  Retrieves every booking for the back office
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.Booking}
// @Router       /book [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	c.JSON(http.StatusOK, response.OK(h.bookingService.AllBookings(), ""))
}

// MyBookings handles GET /my/bookings for the signed-in member
// @Summary      List own bookings
// @Description  Retrieves the caller's bookings, newest first, with cancellation flags
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]service.BookingView}
// @Failure      401  {object}  response.Response
// @Router       /my/bookings [get]
func (h *BookingHandler) MyBookings(c *gin.Context) {
	contact := c.GetString("userPhone")
	if contact == "" {
		c.JSON(http.StatusUnauthorized, response.Fail("phone claim missing from token"))
		return
	}

	c.JSON(http.StatusOK, response.OK(h.bookingService.UserBookings(contact), ""))
}

// CancelBooking handles PUT /my/bookings/:id/cancel inside the 24h window
// @Summary      Cancel own booking
// @Description  Cancels the caller's booking if made within the last 24 hours
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  response.Response{data=model.Booking}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /my/bookings/{id}/cancel [put]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	contact := c.GetString("userPhone")
	if contact == "" {
		c.JSON(http.StatusUnauthorized, response.Fail("phone claim missing from token"))
		return
	}

	booking, err := h.bookingService.CancelOwn(c.Param("id"), contact)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, response.Fail("Booking not found"))
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, response.Fail("This booking does not belong to you"))
		case errors.Is(err, service.ErrCancelWindowClosed):
			c.JSON(http.StatusBadRequest, response.Fail("预约超过24小时，无法取消"))
		default:
			c.JSON(http.StatusInternalServerError, response.Fail(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.OK(booking, "预约已取消"))
}

// UpdateStatus handles PUT /bookings/:id/status for the back office
// @Summary      Update booking status
// @Description  Moves a booking through its lifecycle, rejecting changes on terminal states
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                       true  "Booking ID"
// @Param        payload  body      service.UpdateStatusRequest  true  "Status Payload"
// @Success      200      {object}  response.Response{data=model.Booking}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /bookings/{id}/status [put]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid request payload"))
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, response.Fail("Booking not found"))
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.OK(booking, "状态已更新"))
}

// Schedule handles PATCH /bookings/:id/schedule
// @Summary      Schedule booking
// @Description  Sets the confirmed session time for a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                   true  "Booking ID"
// @Param        payload  body      service.ScheduleRequest  true  "Schedule Payload"
// @Success      200      {object}  response.Response{data=model.Booking}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /bookings/{id}/schedule [patch]
func (h *BookingHandler) Schedule(c *gin.Context) {
	var req service.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid request payload"))
		return
	}

	booking, err := h.bookingService.Schedule(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Fail("Booking not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.OK(booking, "预约时间已安排"))
}

// DeleteBooking handles DELETE /bookings/:id
// @Summary      Delete booking
// @Description  Permanently removes a booking record
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  response.Response{data=model.Booking}
// @Failure      404  {object}  response.Response
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	booking, err := h.bookingService.DeleteBooking(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Fail("Booking not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.OK(booking, "预约已删除"))
}

// Statistics handles GET /statistics for the admin dashboard
// @Summary      Booking statistics
// @Description  Aggregated booking counts, topic and mode breakdowns, and revenue
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=service.DashboardStats}
// @Router       /statistics [get]
func (h *BookingHandler) Statistics(c *gin.Context) {
	c.JSON(http.StatusOK, response.OK(h.bookingService.Statistics(), ""))
}
