package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentEndTime(t *testing.T) {
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	appt := Appointment{StartTime: start, Duration: 90}
	assert.True(t, appt.EndTime().Equal(start.Add(90*time.Minute)))
}

func TestAppointmentOverlaps(t *testing.T) {
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	appt := Appointment{StartTime: start, Duration: 60} // 10:00-11:00

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical", start, start.Add(time.Hour), true},
		{"contained", start.Add(15 * time.Minute), start.Add(30 * time.Minute), true},
		{"straddles start", start.Add(-30 * time.Minute), start.Add(30 * time.Minute), true},
		{"straddles end", start.Add(30 * time.Minute), start.Add(90 * time.Minute), true},
		{"ends at start", start.Add(-time.Hour), start, false},
		{"starts at end", start.Add(time.Hour), start.Add(2 * time.Hour), false},
		{"well before", start.Add(-3 * time.Hour), start.Add(-2 * time.Hour), false},
		{"well after", start.Add(3 * time.Hour), start.Add(4 * time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, appt.Overlaps(tc.start, tc.end))
		})
	}
}
