package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"omnispa/models"
	"omnispa/utils"
)

func newTestEngine(spas *mockSpaRepo, appts *mockAppointmentRepo) *DefaultEngine {
	e := NewEngine(spas, appts, &mockOwnerRepo{}, nil, nil)
	// A fixed clock well before the test dates keeps the today-cutoff out of
	// the way unless a test opts in.
	e.Now = func() time.Time {
		return time.Date(2026, 1, 1, 8, 0, 0, 0, utils.SeychellesTZ)
	}
	return e
}

func testSpa(id string) *models.Spa {
	return &models.Spa{ID: id, OwnerID: "owner-1", Name: "Serenity Spa"}
}

func apptAt(spaID string, day time.Time, hour, minute, durationMin int) models.Appointment {
	return models.Appointment{
		ID:        "appt",
		SpaID:     spaID,
		StartTime: time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, utils.SeychellesTZ),
		Duration:  durationMin,
	}
}

func TestAvailableSlotsNoScheduleForDay(t *testing.T) {
	spas := new(mockSpaRepo)
	appts := new(mockAppointmentRepo)
	spas.On("GetByID", "spa-1").Return(testSpa("spa-1"), nil)
	spas.On("GetAvailability", "spa-1", "monday").Return(nil, nil)

	e := newTestEngine(spas, appts)
	result, err := e.AvailableSlots(context.Background(), "spa-1", "2026-09-07")

	require.NoError(t, err)
	assert.Empty(t, result.Slots)
	assert.Equal(t, "monday", result.Day)
	assert.Equal(t, "No availability set for this day", result.Message)
}

func TestAvailableSlotsClosedDay(t *testing.T) {
	spas := new(mockSpaRepo)
	appts := new(mockAppointmentRepo)
	spas.On("GetByID", "spa-1").Return(testSpa("spa-1"), nil)
	spas.On("GetAvailability", "spa-1", "saturday").Return(&models.DayAvailability{
		Day:      "saturday",
		IsClosed: true,
	}, nil)

	e := newTestEngine(spas, appts)
	result, err := e.AvailableSlots(context.Background(), "spa-1", "2026-03-14")

	require.NoError(t, err)
	assert.Empty(t, result.Slots)
	assert.Equal(t, "Spa is closed on this day", result.Message)
}

func TestAvailableSlotsFreeDayEchoesTemplate(t *testing.T) {
	spas := new(mockSpaRepo)
	appts := new(mockAppointmentRepo)
	spas.On("GetByID", "spa-1").Return(testSpa("spa-1"), nil)
	spas.On("GetAvailability", "spa-1", "monday").Return(&models.DayAvailability{
		Day: "monday",
		TimeSlots: []models.TimeInterval{
			{Start: "09:00 AM", End: "11:00 AM"},
			{Start: "14:00", End: "16:00"},
		},
	}, nil)
	appts.On("GetBySpaAndDate", "spa-1", mock.Anything).Return([]models.Appointment{}, nil)

	e := newTestEngine(spas, appts)
	result, err := e.AvailableSlots(context.Background(), "spa-1", "2026-09-07")

	require.NoError(t, err)
	require.Len(t, result.Slots, 2)
	// Raw template strings come back untouched, in template order.
	assert.Equal(t, models.Slot{Start: "09:00 AM", End: "11:00 AM"}, result.Slots[0])
	assert.Equal(t, models.Slot{Start: "14:00", End: "16:00"}, result.Slots[1])
}

func TestAvailableSlotsWholeIntervalDiscardedOnOverlap(t *testing.T) {
	// One open-plan interval covering the day and a single booked hour inside
	// it: the whole interval disappears rather than splitting around the
	// booking.
	spas := new(mockSpaRepo)
	appts := new(mockAppointmentRepo)
	spas.On("GetByID", "spa-1").Return(testSpa("spa-1"), nil)
	spas.On("GetAvailability", "spa-1", "monday").Return(&models.DayAvailability{
		Day: "monday",
		TimeSlots: []models.TimeInterval{
			{Start: "09:00", End: "17:00"},
		},
	}, nil)
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, utils.SeychellesTZ)
	appts.On("GetBySpaAndDate", "spa-1", mock.Anything).Return([]models.Appointment{
		apptAt("spa-1", day, 10, 0, 60),
	}, nil)

	e := newTestEngine(spas, appts)
	result, err := e.AvailableSlots(context.Background(), "spa-1", "2026-09-07")

	require.NoError(t, err)
	assert.Empty(t, result.Slots)
}

func TestAvailableSlotsPartialOverlapDiscards(t *testing.T) {
	spas := new(mockSpaRepo)
	appts := new(mockAppointmentRepo)
	spas.On("GetByID", "spa-1").Return(testSpa("spa-1"), nil)
	spas.On("GetAvailability", "spa-1", "monday").Return(&models.DayAvailability{
		Day: "monday",
		TimeSlots: []models.TimeInterval{
			{Start: "09:00", End: "10:00"},
			{Start: "10:00", End: "11:00"},
			{Start: "11:00", End: "12:00"},
		},
	}, nil)
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, utils.SeychellesTZ)
	// 09:30-10:30 straddles the first two slots.
	appts.On("GetBySpaAndDate", "spa-1", mock.Anything).Return([]models.Appointment{
		apptAt("spa-1", day, 9, 30, 60),
	}, nil)

	e := newTestEngine(spas, appts)
	result, err := e.AvailableSlots(context.Background(), "spa-1", "2026-09-07")

	require.NoError(t, err)
	require.Len(t, result.Slots, 1)
	assert.Equal(t, "11:00", result.Slots[0].Start)
}

func TestAvailableSlotsAdjacentAppointmentKeepsSlot(t *testing.T) {
	spas := new(mockSpaRepo)
	appts := new(mockAppointmentRepo)
	spas.On("GetByID", "spa-1").Return(testSpa("spa-1"), nil)
	spas.On("GetAvailability", "spa-1", "monday").Return(&models.DayAvailability{
		Day: "monday",
		TimeSlots: []models.TimeInterval{
			{Start: "10:00", End: "11:00"},
		},
	}, nil)
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, utils.SeychellesTZ)
	// Ends exactly as the slot begins and starts exactly as it ends:
	// back-to-back never conflicts.
	appts.On("GetBySpaAndDate", "spa-1", mock.Anything).Return([]models.Appointment{
		apptAt("spa-1", day, 9, 0, 60),
		apptAt("spa-1", day, 11, 0, 60),
	}, nil)

	e := newTestEngine(spas, appts)
	result, err := e.AvailableSlots(context.Background(), "spa-1", "2026-09-07")

	require.NoError(t, err)
	require.Len(t, result.Slots, 1)
}

func TestAvailableSlotsTodayCutoff(t *testing.T) {
	spas := new(mockSpaRepo)
	appts := new(mockAppointmentRepo)
	spas.On("GetByID", "spa-1").Return(testSpa("spa-1"), nil)
	spas.On("GetAvailability", "spa-1", "monday").Return(&models.DayAvailability{
		Day: "monday",
		TimeSlots: []models.TimeInterval{
			{Start: "09:00", End: "10:00"},
			{Start: "12:00", End: "13:00"},
			{Start: "15:00", End: "16:00"},
		},
	}, nil)
	appts.On("GetBySpaAndDate", "spa-1", mock.Anything).Return([]models.Appointment{}, nil)

	e := newTestEngine(spas, appts)
	// 12:30 on the requested day: the morning slot is gone, the in-progress
	// noon slot survives because it has not ended yet.
	e.Now = func() time.Time {
		return time.Date(2026, 9, 7, 12, 30, 0, 0, utils.SeychellesTZ)
	}
	result, err := e.AvailableSlots(context.Background(), "spa-1", "2026-09-07")

	require.NoError(t, err)
	require.Len(t, result.Slots, 2)
	assert.Equal(t, "12:00", result.Slots[0].Start)
	assert.Equal(t, "15:00", result.Slots[1].Start)
}

func TestAvailableSlotsSkipsMalformedIntervals(t *testing.T) {
	spas := new(mockSpaRepo)
	appts := new(mockAppointmentRepo)
	spas.On("GetByID", "spa-1").Return(testSpa("spa-1"), nil)
	spas.On("GetAvailability", "spa-1", "monday").Return(&models.DayAvailability{
		Day: "monday",
		TimeSlots: []models.TimeInterval{
			{Start: "nonsense", End: "10:00"},
			{Start: "10:00", End: "11:00"},
			{Start: "11:00", End: "25:99"},
		},
	}, nil)
	appts.On("GetBySpaAndDate", "spa-1", mock.Anything).Return([]models.Appointment{}, nil)

	e := newTestEngine(spas, appts)
	result, err := e.AvailableSlots(context.Background(), "spa-1", "2026-09-07")

	require.NoError(t, err)
	require.Len(t, result.Slots, 1)
	assert.Equal(t, "10:00", result.Slots[0].Start)
}

func TestAvailableSlotsInvalidDate(t *testing.T) {
	e := newTestEngine(new(mockSpaRepo), new(mockAppointmentRepo))
	_, err := e.AvailableSlots(context.Background(), "spa-1", "07/09/2026")
	assert.True(t, IsValidation(err))
}

func TestAvailableSlotsUnknownSpa(t *testing.T) {
	spas := new(mockSpaRepo)
	spas.On("GetByID", "ghost").Return(nil, nil)

	e := newTestEngine(spas, new(mockAppointmentRepo))
	_, err := e.AvailableSlots(context.Background(), "ghost", "2026-09-07")
	assert.True(t, IsValidation(err))
}
