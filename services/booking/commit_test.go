package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"omnispa/models"
	"omnispa/utils"
)

func validRequest() BookingRequest {
	return BookingRequest{
		SpaID:         "spa-1",
		Date:          "2026-09-07",
		Time:          "02:30 PM",
		CustomerName:  "Marie Payet",
		CustomerEmail: "marie@example.sc",
		CustomerPhone: "+248 2 555 123",
		LineItems: []LineItem{
			{ServiceID: "svc-1", Name: "Deep Tissue Massage", Price: 85, Duration: 60},
			{ServiceID: "svc-2", Name: "Facial", Price: 45, Duration: 30},
		},
		ClientTotal: 1.00, // deliberately wrong, must be ignored
	}
}

func bookingEngine(t *testing.T) (*DefaultEngine, *mockSpaRepo, *mockAppointmentRepo, *mockOwnerRepo, *mockNotifier, *mockReminders) {
	t.Helper()
	spas := new(mockSpaRepo)
	appts := new(mockAppointmentRepo)
	owners := new(mockOwnerRepo)
	notifier := new(mockNotifier)
	reminders := new(mockReminders)
	e := NewEngine(spas, appts, owners, notifier, reminders)
	e.Now = func() time.Time {
		return time.Date(2026, 1, 1, 8, 0, 0, 0, utils.SeychellesTZ)
	}
	return e, spas, appts, owners, notifier, reminders
}

func TestBookMissingFields(t *testing.T) {
	e, _, _, _, _, _ := bookingEngine(t)

	cases := map[string]func(*BookingRequest){
		"spa_id":         func(r *BookingRequest) { r.SpaID = "" },
		"date":           func(r *BookingRequest) { r.Date = "  " },
		"time":           func(r *BookingRequest) { r.Time = "" },
		"customer_name":  func(r *BookingRequest) { r.CustomerName = "" },
		"customer_email": func(r *BookingRequest) { r.CustomerEmail = "" },
		"customer_phone": func(r *BookingRequest) { r.CustomerPhone = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			_, err := e.Book(context.Background(), req)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestBookNoLineItems(t *testing.T) {
	e, _, _, _, _, _ := bookingEngine(t)
	req := validRequest()
	req.LineItems = nil

	_, err := e.Book(context.Background(), req)
	assert.True(t, IsValidation(err))
}

func TestBookInvalidDateAndTime(t *testing.T) {
	e, _, _, _, _, _ := bookingEngine(t)

	req := validRequest()
	req.Date = "next tuesday"
	_, err := e.Book(context.Background(), req)
	assert.True(t, IsValidation(err))

	req = validRequest()
	req.Time = "half past nine"
	_, err = e.Book(context.Background(), req)
	assert.True(t, IsValidation(err))
}

func TestBookUnknownSpa(t *testing.T) {
	e, spas, _, _, _, _ := bookingEngine(t)
	spas.On("GetByID", "spa-1").Return(nil, nil)

	_, err := e.Book(context.Background(), validRequest())
	assert.True(t, IsValidation(err))
}

func TestBookZeroDuration(t *testing.T) {
	e, spas, _, _, _, _ := bookingEngine(t)
	spas.On("GetByID", "spa-1").Return(testSpa("spa-1"), nil)

	req := validRequest()
	req.LineItems = []LineItem{{ServiceID: "svc-1", Name: "Massage", Price: 85, Duration: 0}}
	_, err := e.Book(context.Background(), req)
	assert.True(t, IsValidation(err))
}

func TestBookSuccessRecomputesTotal(t *testing.T) {
	e, spas, appts, owners, notifier, reminders := bookingEngine(t)
	spas.On("GetByID", "spa-1").Return(testSpa("spa-1"), nil)
	owners.On("GetByID", "owner-1").Return(&models.Owner{ID: "owner-1", Name: "Anna", Email: "anna@example.sc"}, nil)
	notifier.On("NotifyBookingCreated", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	reminders.On("ScheduleReminder", mock.Anything).Return(nil)

	var committed *models.Appointment
	appts.On("InsertAppointment", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			committed = args.Get(1).(*models.Appointment)
			precheck := args.Get(2).(func([]models.Appointment) error)
			assert.NoError(t, precheck(nil))
		}).
		Return(nil)

	appt, err := e.Book(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, appt)
	assert.Same(t, committed, appt)
	assert.NotEmpty(t, appt.ID)
	// Total comes from the line items, never the client's figure.
	assert.InDelta(t, 130.0, appt.TotalPrice, 1e-9)
	assert.Equal(t, 90, appt.Duration)

	want := time.Date(2026, 9, 7, 14, 30, 0, 0, utils.SeychellesTZ)
	assert.True(t, appt.StartTime.Equal(want))
	// Stamped with the engine clock, in the business zone.
	assert.True(t, appt.CreatedAt.Equal(e.Now()))
	require.Len(t, appt.Services, 2)
	assert.Equal(t, "Deep Tissue Massage", appt.Services[0].ServiceName)

	notifier.AssertCalled(t, "NotifyBookingCreated", mock.Anything, mock.Anything, appt)
	reminders.AssertCalled(t, "ScheduleReminder", mock.MatchedBy(func(p models.ReminderPayload) bool {
		return p.AppointmentID == appt.ID && p.SpaName == "Serenity Spa"
	}))
}

func TestBookConflict(t *testing.T) {
	e, spas, appts, _, notifier, reminders := bookingEngine(t)
	spas.On("GetByID", "spa-1").Return(testSpa("spa-1"), nil)

	day := time.Date(2026, 9, 7, 0, 0, 0, 0, utils.SeychellesTZ)
	conflictErr := &ConflictError{Message: "the selected timeslot is no longer available"}
	appts.On("InsertAppointment", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			// The precheck the engine hands the repository must flag an
			// appointment occupying the requested window.
			precheck := args.Get(2).(func([]models.Appointment) error)
			err := precheck([]models.Appointment{apptAt("spa-1", day, 14, 0, 60)})
			assert.True(t, IsConflict(err))
		}).
		Return(conflictErr)

	_, err := e.Book(context.Background(), validRequest())

	require.Error(t, err)
	assert.True(t, IsConflict(err))
	notifier.AssertNotCalled(t, "NotifyBookingCreated", mock.Anything, mock.Anything, mock.Anything)
	reminders.AssertNotCalled(t, "ScheduleReminder", mock.Anything)
}

func TestBookNotificationFailureDoesNotFailBooking(t *testing.T) {
	e, spas, appts, owners, notifier, reminders := bookingEngine(t)
	spas.On("GetByID", "spa-1").Return(testSpa("spa-1"), nil)
	owners.On("GetByID", "owner-1").Return(nil, errors.New("owner lookup down"))
	notifier.On("NotifyBookingCreated", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp down"))
	reminders.On("ScheduleReminder", mock.Anything).Return(errors.New("queue down"))
	appts.On("InsertAppointment", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	appt, err := e.Book(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotNil(t, appt)
}

// memoryAppointmentRepo mimics the transactional contract of the mongo
// repository: the conflict re-read, precheck and insert run as one serialized
// critical section per repo, the way the spa-document version bump serializes
// commits per spa.
type memoryAppointmentRepo struct {
	mu    sync.Mutex
	appts []models.Appointment
}

func (m *memoryAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	return nil, nil
}

func (m *memoryAppointmentRepo) GetBySpaAndDate(spaID string, date time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (m *memoryAppointmentRepo) GetStartingBefore(spaID string, before time.Time) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.SpaID == spaID && a.StartTime.Before(before) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryAppointmentRepo) ListBySpa(spaID string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Appointment(nil), m.appts...), nil
}

func (m *memoryAppointmentRepo) InsertAppointment(ctx context.Context, appt *models.Appointment, precheck func(existing []models.Appointment) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var existing []models.Appointment
	for _, a := range m.appts {
		if a.SpaID == appt.SpaID && a.StartTime.Before(appt.EndTime()) {
			existing = append(existing, a)
		}
	}
	if err := precheck(existing); err != nil {
		return err
	}
	m.appts = append(m.appts, *appt)
	return nil
}

func TestBookConcurrentCommitsExactlyOneWins(t *testing.T) {
	spas := new(mockSpaRepo)
	spas.On("GetByID", "spa-1").Return(testSpa("spa-1"), nil)
	repo := &memoryAppointmentRepo{}

	e := NewEngine(spas, repo, &mockOwnerRepo{}, nil, nil)
	e.Now = func() time.Time {
		return time.Date(2026, 1, 1, 8, 0, 0, 0, utils.SeychellesTZ)
	}

	// Two customers race for the same 14:30 slot.
	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.Book(context.Background(), validRequest())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case IsConflict(err):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	stored, err := repo.ListBySpa("spa-1")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestBookPersistenceFailure(t *testing.T) {
	e, spas, appts, _, _, _ := bookingEngine(t)
	spas.On("GetByID", "spa-1").Return(testSpa("spa-1"), nil)
	appts.On("InsertAppointment", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("transaction aborted"))

	_, err := e.Book(context.Background(), validRequest())

	require.Error(t, err)
	assert.True(t, IsPersistence(err))
	assert.False(t, IsValidation(err))
	assert.False(t, IsConflict(err))
}
