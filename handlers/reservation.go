// File: handlers/reservation.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	reservationRepo "roomify/database/repository/reservation"
	"roomify/models"
	"roomify/services/scheduling"
	"roomify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler exposes the booking and reservation endpoints.
type ReservationHandler struct {
	Booking      scheduling.BookingService
	Reservations reservationRepo.Repository
	Location     *time.Location
	Logger       *zap.Logger
}

// NewReservationHandler constructs a ReservationHandler. loc is the fixed
// location used to interpret date-only query parameters.
func NewReservationHandler(booking scheduling.BookingService, reservations reservationRepo.Repository, loc *time.Location, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Booking: booking, Reservations: reservations, Location: loc, Logger: logger}
}

// bookingPayload is the wire shape of a booking request. The repeat bound is
// expressed as either repeatCount or repeatEndDate, never both.
type bookingPayload struct {
	RoomID        string     `json:"roomId"`
	UserName      string     `json:"userName"`
	Contact       string     `json:"contact"`
	MeetingName   string     `json:"meetingName"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       time.Time  `json:"endTime"`
	RepeatType    string     `json:"repeatType"`
	RepeatCount   int        `json:"repeatCount"`
	RepeatEndDate *time.Time `json:"repeatEndDate"`
}

// CreateReservationHandler books a single reservation or a recurring series.
// A single booking returns the reservation object; a series returns the array
// of persisted occurrences. The series is all-or-nothing: any conflict aborts
// the whole request.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	var input bookingPayload
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload.", err.Error())
		return
	}

	repeat := models.RepeatType(input.RepeatType)
	if input.RepeatType == "" {
		repeat = models.RepeatNone
	}

	req := models.BookingRequest{
		RoomID:      input.RoomID,
		UserName:    input.UserName,
		Contact:     input.Contact,
		MeetingName: input.MeetingName,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Repeat:      repeat,
		RepeatCount: input.RepeatCount,
		RepeatUntil: input.RepeatEndDate,
	}

	result, err := h.Booking.TryBook(c.Request.Context(), req)
	if err != nil {
		var verr *scheduling.ValidationError
		var cerr *scheduling.ConflictError
		var nferr *scheduling.NotFoundError
		switch {
		case errors.As(err, &verr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking request: "+verr.Error(), "")
		case errors.As(err, &cerr):
			utils.JSONError(c, http.StatusBadRequest, "The room is already reserved for the requested time.", cerr.Error())
		case errors.As(err, &nferr):
			utils.JSONError(c, http.StatusNotFound, "Room not found.", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create reservation.", err.Error())
		}
		return
	}

	if repeat == models.RepeatNone {
		c.JSON(http.StatusCreated, result.Reservations[0])
		return
	}
	c.JSON(http.StatusCreated, result.Reservations)
}

// ListReservationsHandler returns reservations joined with their rooms,
// optionally filtered by room and calendar day (?roomId=...&date=2024-03-20).
func (h *ReservationHandler) ListReservationsHandler(c *gin.Context) {
	filter := reservationRepo.ListFilter{RoomID: c.Query("roomId")}

	if date := c.Query("date"); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, h.Location)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date; expected YYYY-MM-DD.", err.Error())
			return
		}
		filter.Day = &day
	}

	reservations, err := h.Reservations.List(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list reservations.", err.Error())
		return
	}
	if reservations == nil {
		reservations = []models.ReservationWithRoom{}
	}
	c.JSON(http.StatusOK, reservations)
}

// DeleteReservationHandler deletes one reservation by id.
func (h *ReservationHandler) DeleteReservationHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Reservations.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Reservation not found.", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete reservation.", err.Error())
		return
	}

	h.Logger.Info("reservation deleted", zap.String("reservationId", id))
	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted."})
}
