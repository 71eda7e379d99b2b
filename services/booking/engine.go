package booking

import (
	"context"
	"time"

	appointmentRepo "omnispa/database/repository/appointment"
	ownerRepo "omnispa/database/repository/owner"
	spaRepo "omnispa/database/repository/spa"
	"omnispa/models"
	"omnispa/services/notification"
	"omnispa/utils"
)

// ReminderScheduler enqueues a reminder to be delivered ahead of an
// appointment's start time.
type ReminderScheduler interface {
	ScheduleReminder(payload models.ReminderPayload) error
}

// Engine answers the three booking questions: which slots a spa has free on a
// date, whether a specific timeslot is still open, and committing an
// appointment into it.
type Engine interface {
	AvailableSlots(ctx context.Context, spaID, date string) (models.DayAvailabilityResult, error)
	IsTimeslotAvailable(ctx context.Context, spaID string, start time.Time, durationMinutes int) (bool, error)
	Book(ctx context.Context, req BookingRequest) (*models.Appointment, error)
}

type DefaultEngine struct {
	Spas         spaRepo.SpaRepository
	Appointments appointmentRepo.AppointmentRepository
	Owners       ownerRepo.OwnerRepository
	Notifier     notification.Service
	Reminders    ReminderScheduler

	// Now is the clock used for today-cutoff checks. Tests swap it out.
	Now func() time.Time
}

func NewEngine(spas spaRepo.SpaRepository, appts appointmentRepo.AppointmentRepository,
	owners ownerRepo.OwnerRepository, notifier notification.Service, reminders ReminderScheduler) *DefaultEngine {
	return &DefaultEngine{
		Spas:         spas,
		Appointments: appts,
		Owners:       owners,
		Notifier:     notifier,
		Reminders:    reminders,
		Now:          utils.NowSeychelles,
	}
}
