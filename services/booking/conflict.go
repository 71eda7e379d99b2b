package booking

import (
	"context"
	"fmt"
	"time"

	"omnispa/models"
)

// IsTimeslotAvailable reports whether the half-open window
// [start, start+duration) is free of existing appointments. Only appointments
// starting before the proposed end are fetched; one of those conflicts exactly
// when it runs past the proposed start.
func (e *DefaultEngine) IsTimeslotAvailable(ctx context.Context, spaID string, start time.Time, durationMinutes int) (bool, error) {
	proposedEnd := start.Add(time.Duration(durationMinutes) * time.Minute)

	existing, err := e.Appointments.GetStartingBefore(spaID, proposedEnd)
	if err != nil {
		return false, fmt.Errorf("failed to load appointments for spa %s: %w", spaID, err)
	}
	return !conflictsWith(existing, start), nil
}

// conflictsWith assumes every appointment in existing starts before the
// proposed end, so an overlap remains only if one also ends after the
// proposed start. Back-to-back appointments do not conflict.
func conflictsWith(existing []models.Appointment, proposedStart time.Time) bool {
	for _, a := range existing {
		if a.EndTime().After(proposedStart) {
			return true
		}
	}
	return false
}
