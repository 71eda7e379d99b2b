package models

import "time"

// ReminderPayload is the asynq task payload for an appointment reminder email.
type ReminderPayload struct {
	AppointmentID string    `json:"appointment_id"`
	SpaID         string    `json:"spa_id"`
	SpaName       string    `json:"spa_name"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	StartTime     time.Time `json:"start_time"`
	Duration      int       `json:"duration"`
}
