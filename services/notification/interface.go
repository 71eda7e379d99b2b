package notification

import "omnispa/models"

// EmailSender delivers a single email. Implementations must be safe for
// concurrent use.
type EmailSender interface {
	Send(toName, toEmail, subject, plainText string) error
}

// Service produces the emails the booking flow triggers.
type Service interface {
	// NotifyBookingCreated emails the spa owner and the customer about a new
	// appointment. Delivery failures are returned for logging only; a booking
	// is never rolled back over email.
	NotifyBookingCreated(spa *models.Spa, owner *models.Owner, appt *models.Appointment) error

	// SendReminder emails the customer ahead of their appointment.
	SendReminder(payload models.ReminderPayload) error
}
