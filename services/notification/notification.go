package notification

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"omnispa/models"
	"omnispa/utils"
)

type DefaultNotificationService struct {
	Sender EmailSender
}

func NewNotificationService(sender EmailSender) *DefaultNotificationService {
	return &DefaultNotificationService{Sender: sender}
}

const apptTimeLayout = "Monday, 2 January 2006 at 3:04 PM"

// NotifyBookingCreated emails the owner and the customer. Both sends are
// attempted even if the first fails; errors are joined for the caller to log.
func (n *DefaultNotificationService) NotifyBookingCreated(spa *models.Spa, owner *models.Owner, appt *models.Appointment) error {
	var failures []string

	if owner != nil && owner.Email != "" {
		subject := fmt.Sprintf("New booking at %s", spa.Name)
		body := ownerBookingBody(spa, appt)
		if err := n.Sender.Send(owner.Name, owner.Email, subject, body); err != nil {
			utils.GetLogger().Error("owner booking email failed",
				zap.String("appointmentID", appt.ID), zap.Error(err))
			failures = append(failures, "owner email: "+err.Error())
		}
	}

	subject := fmt.Sprintf("Your booking at %s is confirmed", spa.Name)
	body := customerBookingBody(spa, appt)
	if err := n.Sender.Send(appt.CustomerName, appt.CustomerEmail, subject, body); err != nil {
		utils.GetLogger().Error("customer booking email failed",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		failures = append(failures, "customer email: "+err.Error())
	}

	if len(failures) > 0 {
		return fmt.Errorf("booking notifications incomplete: %s", strings.Join(failures, "; "))
	}
	return nil
}

func (n *DefaultNotificationService) SendReminder(payload models.ReminderPayload) error {
	subject := fmt.Sprintf("Reminder: your appointment at %s", payload.SpaName)
	start := payload.StartTime.In(utils.SeychellesTZ)
	body := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder of your upcoming appointment at %s on %s (%d minutes).\n\nSee you soon!",
		payload.CustomerName, payload.SpaName, start.Format(apptTimeLayout), payload.Duration)
	return n.Sender.Send(payload.CustomerName, payload.CustomerEmail, subject, body)
}

func ownerBookingBody(spa *models.Spa, appt *models.Appointment) string {
	var b strings.Builder
	start := appt.StartTime.In(utils.SeychellesTZ)
	fmt.Fprintf(&b, "A new appointment was booked at %s.\n\n", spa.Name)
	fmt.Fprintf(&b, "When: %s\n", start.Format(apptTimeLayout))
	fmt.Fprintf(&b, "Duration: %d minutes\n", appt.Duration)
	fmt.Fprintf(&b, "Customer: %s (%s, %s)\n", appt.CustomerName, appt.CustomerEmail, appt.CustomerPhone)
	if appt.CustomerNotes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", appt.CustomerNotes)
	}
	b.WriteString("\nServices:\n")
	for _, svc := range appt.Services {
		fmt.Fprintf(&b, "  - %s (SCR %.2f)\n", svc.ServiceName, svc.Price)
	}
	fmt.Fprintf(&b, "\nTotal: SCR %.2f\n", appt.TotalPrice)
	return b.String()
}

func customerBookingBody(spa *models.Spa, appt *models.Appointment) string {
	var b strings.Builder
	start := appt.StartTime.In(utils.SeychellesTZ)
	fmt.Fprintf(&b, "Hi %s,\n\nYour appointment at %s is confirmed.\n\n", appt.CustomerName, spa.Name)
	fmt.Fprintf(&b, "When: %s\n", start.Format(apptTimeLayout))
	fmt.Fprintf(&b, "Where: %s, %s\n", spa.Address, spa.Area)
	fmt.Fprintf(&b, "Duration: %d minutes\n\n", appt.Duration)
	b.WriteString("Services:\n")
	for _, svc := range appt.Services {
		fmt.Fprintf(&b, "  - %s (SCR %.2f)\n", svc.ServiceName, svc.Price)
	}
	fmt.Fprintf(&b, "\nTotal: SCR %.2f\n\nThank you for booking with us!\n", appt.TotalPrice)
	return b.String()
}
