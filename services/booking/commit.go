package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"omnispa/models"
	"omnispa/utils"
)

// LineItem is one service the customer selected, priced at booking time.
type LineItem struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Duration  int     `json:"duration" binding:"required"`
}

type BookingRequest struct {
	SpaID         string     `json:"spa_id" binding:"required"`
	Date          string     `json:"date" binding:"required"`
	Time          string     `json:"time" binding:"required"`
	CustomerName  string     `json:"customer_name" binding:"required"`
	CustomerEmail string     `json:"customer_email" binding:"required"`
	CustomerPhone string     `json:"customer_phone" binding:"required"`
	Notes         string     `json:"notes"`
	LineItems     []LineItem `json:"services" binding:"required"`

	// ClientTotal is what the client displayed. The committed total is always
	// recomputed from the line items; this field is accepted only so stale
	// clients don't fail to decode.
	ClientTotal float64 `json:"total_price"`
}

// Book validates the request, re-checks the timeslot inside a transaction and
// commits the appointment. On success the owner and customer notifications and
// the reminder enqueue run best-effort: their failures are logged, never
// returned.
func (e *DefaultEngine) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	start, err := parseStart(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	spa, err := e.Spas.GetByID(req.SpaID)
	if err != nil {
		return nil, fmt.Errorf("failed to load spa %s: %w", req.SpaID, err)
	}
	if spa == nil {
		return nil, &ValidationError{Message: "spa not found"}
	}

	duration := 0
	total := 0.0
	services := make([]models.AppointmentService, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		duration += item.Duration
		total += item.Price
		services = append(services, models.AppointmentService{
			ServiceID:   item.ServiceID,
			ServiceName: item.Name,
			Price:       item.Price,
		})
	}
	if duration <= 0 {
		return nil, &ValidationError{Message: "total service duration must be positive"}
	}

	appt := &models.Appointment{
		ID:            uuid.New().String(),
		SpaID:         req.SpaID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		CustomerNotes: req.Notes,
		StartTime:     start,
		Duration:      duration,
		TotalPrice:    total,
		Services:      services,
		CreatedAt:     e.Now(),
	}

	err = e.Appointments.InsertAppointment(ctx, appt, func(existing []models.Appointment) error {
		if conflictsWith(existing, start) {
			return &ConflictError{Message: "the selected timeslot is no longer available"}
		}
		return nil
	})
	if err != nil {
		if IsConflict(err) {
			return nil, err
		}
		return nil, &PersistenceError{Message: "failed to commit appointment", Err: err}
	}

	e.afterCommit(spa, appt)
	return appt, nil
}

func validateRequest(req BookingRequest) error {
	missing := []string{}
	if strings.TrimSpace(req.SpaID) == "" {
		missing = append(missing, "spa_id")
	}
	if strings.TrimSpace(req.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(req.Time) == "" {
		missing = append(missing, "time")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		missing = append(missing, "customer_email")
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		missing = append(missing, "customer_phone")
	}
	if len(missing) > 0 {
		return &ValidationError{Message: "missing required fields: " + strings.Join(missing, ", ")}
	}
	if len(req.LineItems) == 0 {
		return &ValidationError{Message: "at least one service must be selected"}
	}
	return nil
}

func parseStart(date, clock string) (time.Time, error) {
	day, err := time.ParseInLocation(utils.DateLayout, date, utils.SeychellesTZ)
	if err != nil {
		return time.Time{}, &ValidationError{Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}
	t, err := ParseTimeOfDay(clock)
	if err != nil {
		return time.Time{}, &ValidationError{Message: fmt.Sprintf("invalid time %q", clock)}
	}
	return atOnDate(t, day, utils.SeychellesTZ), nil
}

func (e *DefaultEngine) afterCommit(spa *models.Spa, appt *models.Appointment) {
	logger := utils.GetLogger()

	if e.Notifier != nil {
		owner, err := e.Owners.GetByID(spa.OwnerID)
		if err != nil {
			logger.Error("failed to load owner for booking notification",
				zap.String("spaID", spa.ID), zap.Error(err))
		}
		if err := e.Notifier.NotifyBookingCreated(spa, owner, appt); err != nil {
			logger.Error("booking notification failed",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	if e.Reminders != nil {
		payload := models.ReminderPayload{
			AppointmentID: appt.ID,
			SpaID:         spa.ID,
			SpaName:       spa.Name,
			CustomerName:  appt.CustomerName,
			CustomerEmail: appt.CustomerEmail,
			StartTime:     appt.StartTime,
			Duration:      appt.Duration,
		}
		if err := e.Reminders.ScheduleReminder(payload); err != nil {
			logger.Error("failed to schedule booking reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
}
