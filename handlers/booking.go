package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"omnispa/services/booking"
	"omnispa/utils"
)

// GetAvailability returns the spa's open slots for ?date=YYYY-MM-DD.
func (hb *HandlerBundle) GetAvailability(c *gin.Context) {
	spaID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", nil)
		return
	}

	result, err := hb.Booking.AvailableSlots(c.Request.Context(), spaID, date)
	if err != nil {
		if !booking.IsValidation(err) {
			utils.GetLogger().Error("availability lookup failed",
				zap.String("spaID", spaID), zap.Error(err))
		}
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateAppointment books a timeslot.
func (hb *HandlerBundle) CreateAppointment(c *gin.Context) {
	var req booking.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	appt, err := hb.Booking.Book(c.Request.Context(), req)
	if err != nil {
		if !booking.IsValidation(err) && !booking.IsConflict(err) {
			utils.GetLogger().Error("booking failed",
				zap.String("spaID", req.SpaID), zap.Error(err))
		}
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "appointment booked",
		"appointment": appt,
	})
}
