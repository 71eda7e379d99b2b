package models

import "time"

// Appointment is a confirmed booking. It is created exactly once at commit
// and immutable afterwards; there is no edit or cancel flow. The occupied
// interval is [StartTime, StartTime+Duration minutes).
type Appointment struct {
	ID            string               `bson:"id" json:"id"`
	SpaID         string               `bson:"spa_id" json:"spa_id"`
	CustomerName  string               `bson:"customer_name" json:"customer_name"`
	CustomerEmail string               `bson:"customer_email" json:"customer_email"`
	CustomerPhone string               `bson:"customer_phone" json:"customer_phone"`
	CustomerNotes string               `bson:"customer_notes,omitempty" json:"customer_notes,omitempty"`
	StartTime     time.Time            `bson:"start_time" json:"start_time"`
	Duration      int                  `bson:"duration" json:"duration"`
	TotalPrice    float64              `bson:"total_price" json:"total_price"`
	Services      []AppointmentService `bson:"services" json:"services"`
	CreatedAt     time.Time            `bson:"created_at" json:"created_at"`
}

// EndTime returns the exclusive end of the occupied interval.
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.Duration) * time.Minute)
}

// Overlaps reports whether the appointment's occupied interval intersects
// [start, end). Two intervals overlap unless one entirely precedes the other.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.EndTime().After(start) && a.StartTime.Before(end)
}

// AppointmentService is one line item of an appointment. Name and price are
// snapshotted at booking time so later edits to the spa's service catalogue
// never retroactively change historical appointments.
type AppointmentService struct {
	ServiceID   string  `bson:"service_id" json:"service_id"`
	ServiceName string  `bson:"service_name" json:"service_name"`
	Price       float64 `bson:"price" json:"price"`
}
