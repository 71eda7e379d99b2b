package appointmentRepo

import (
	"context"
	"time"

	"omnispa/models"
)

// AppointmentRepository defines data access for committed appointments.
// Appointments are append-only: there is no update or delete.
type AppointmentRepository interface {
	GetByID(id string) (*models.Appointment, error)

	// GetBySpaAndDate returns the spa's appointments whose start instant falls
	// on the given calendar date in spa-local time, ordered by start time.
	GetBySpaAndDate(spaID string, date time.Time) ([]models.Appointment, error)

	// GetStartingBefore returns the spa's appointments with start_time before
	// the given instant, ordered by start time. Used by the conflict check: an
	// appointment starting after the proposed window cannot conflict, but one
	// starting much earlier may still extend into it.
	GetStartingBefore(spaID string, before time.Time) ([]models.Appointment, error)

	ListBySpa(spaID string) ([]models.Appointment, error)

	// InsertAppointment commits an appointment and its line items atomically.
	// Inside the transaction it re-reads the spa's appointments starting before
	// the new appointment's end and hands them to precheck; a precheck error
	// aborts the transaction and is returned unchanged. The spa document's
	// booking version is bumped in the same transaction so two concurrent
	// commits for one spa produce a write conflict and the driver retries the
	// loser, whose precheck then sees the winner's row.
	InsertAppointment(ctx context.Context, appt *models.Appointment, precheck func(existing []models.Appointment) error) error
}
