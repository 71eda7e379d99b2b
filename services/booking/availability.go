package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"omnispa/models"
	"omnispa/utils"
)

const (
	msgNoAvailability = "No availability set for this day"
	msgClosed         = "Spa is closed on this day"
)

// AvailableSlots resolves the spa's availability template for the given date
// against its committed appointments. A template interval that overlaps any
// appointment is dropped whole; intervals are never split around a booking.
func (e *DefaultEngine) AvailableSlots(ctx context.Context, spaID, date string) (models.DayAvailabilityResult, error) {
	day, err := time.ParseInLocation(utils.DateLayout, date, utils.SeychellesTZ)
	if err != nil {
		return models.DayAvailabilityResult{}, &ValidationError{Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}
	dayName := strings.ToLower(day.Weekday().String())

	spa, err := e.Spas.GetByID(spaID)
	if err != nil {
		return models.DayAvailabilityResult{}, fmt.Errorf("failed to load spa %s: %w", spaID, err)
	}
	if spa == nil {
		return models.DayAvailabilityResult{}, &ValidationError{Message: "spa not found"}
	}

	entry, err := e.Spas.GetAvailability(spaID, dayName)
	if err != nil {
		return models.DayAvailabilityResult{}, fmt.Errorf("failed to load availability for spa %s: %w", spaID, err)
	}

	result := models.DayAvailabilityResult{
		Slots: []models.Slot{},
		Day:   dayName,
	}
	if entry == nil {
		result.Message = msgNoAvailability
		return result, nil
	}
	if entry.IsClosed {
		result.Message = msgClosed
		return result, nil
	}

	appts, err := e.Appointments.GetBySpaAndDate(spaID, day)
	if err != nil {
		return models.DayAvailabilityResult{}, fmt.Errorf("failed to load appointments for spa %s: %w", spaID, err)
	}

	now := e.Now()
	isToday := sameDate(day, now)

	for _, interval := range entry.TimeSlots {
		startClock, err := ParseTimeOfDay(interval.Start)
		if err != nil {
			utils.GetLogger().Warn("skipping malformed availability interval",
				zap.String("spaID", spaID), zap.String("start", interval.Start), zap.Error(err))
			continue
		}
		endClock, err := ParseTimeOfDay(interval.End)
		if err != nil {
			utils.GetLogger().Warn("skipping malformed availability interval",
				zap.String("spaID", spaID), zap.String("end", interval.End), zap.Error(err))
			continue
		}

		slotStart := atOnDate(startClock, day, utils.SeychellesTZ)
		slotEnd := atOnDate(endClock, day, utils.SeychellesTZ)

		if isToday && !slotEnd.After(now) {
			continue
		}

		if overlapsAny(appts, slotStart, slotEnd) {
			continue
		}

		result.Slots = append(result.Slots, models.Slot{
			Start: interval.Start,
			End:   interval.End,
		})
	}
	return result, nil
}

func overlapsAny(appts []models.Appointment, start, end time.Time) bool {
	for _, a := range appts {
		if a.Overlaps(start, end) {
			return true
		}
	}
	return false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.In(utils.SeychellesTZ).Date()
	by, bm, bd := b.In(utils.SeychellesTZ).Date()
	return ay == by && am == bm && ad == bd
}
