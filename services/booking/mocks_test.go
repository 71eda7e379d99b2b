package booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"omnispa/models"
)

type mockSpaRepo struct {
	mock.Mock
}

func (m *mockSpaRepo) Create(spa *models.Spa) error {
	return m.Called(spa).Error(0)
}

func (m *mockSpaRepo) GetByID(id string) (*models.Spa, error) {
	args := m.Called(id)
	spa, _ := args.Get(0).(*models.Spa)
	return spa, args.Error(1)
}

func (m *mockSpaRepo) GetAll() ([]models.Spa, error) {
	args := m.Called()
	spas, _ := args.Get(0).([]models.Spa)
	return spas, args.Error(1)
}

func (m *mockSpaRepo) GetByOwner(ownerID string) ([]models.Spa, error) {
	args := m.Called(ownerID)
	spas, _ := args.Get(0).([]models.Spa)
	return spas, args.Error(1)
}

func (m *mockSpaRepo) GetByArea(area string) ([]models.Spa, error) {
	args := m.Called(area)
	spas, _ := args.Get(0).([]models.Spa)
	return spas, args.Error(1)
}

func (m *mockSpaRepo) Update(spa *models.Spa) error {
	return m.Called(spa).Error(0)
}

func (m *mockSpaRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	return m.Called(id, updateDoc).Error(0)
}

func (m *mockSpaRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockSpaRepo) Search(query string, limit int64) ([]models.Spa, error) {
	args := m.Called(query, limit)
	spas, _ := args.Get(0).([]models.Spa)
	return spas, args.Error(1)
}

func (m *mockSpaRepo) SearchByServiceName(query string, limit int64) ([]models.Spa, error) {
	args := m.Called(query, limit)
	spas, _ := args.Get(0).([]models.Spa)
	return spas, args.Error(1)
}

func (m *mockSpaRepo) GetAvailability(spaID, day string) (*models.DayAvailability, error) {
	args := m.Called(spaID, day)
	entry, _ := args.Get(0).(*models.DayAvailability)
	return entry, args.Error(1)
}

func (m *mockSpaRepo) UpsertAvailability(spaID string, entry models.DayAvailability) error {
	return m.Called(spaID, entry).Error(0)
}

func (m *mockSpaRepo) AddImage(spaID string, img models.SpaImage) error {
	return m.Called(spaID, img).Error(0)
}

func (m *mockSpaRepo) RemoveImage(spaID, publicID string) error {
	return m.Called(spaID, publicID).Error(0)
}

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	args := m.Called(id)
	appt, _ := args.Get(0).(*models.Appointment)
	return appt, args.Error(1)
}

func (m *mockAppointmentRepo) GetBySpaAndDate(spaID string, date time.Time) ([]models.Appointment, error) {
	args := m.Called(spaID, date)
	appts, _ := args.Get(0).([]models.Appointment)
	return appts, args.Error(1)
}

func (m *mockAppointmentRepo) GetStartingBefore(spaID string, before time.Time) ([]models.Appointment, error) {
	args := m.Called(spaID, before)
	appts, _ := args.Get(0).([]models.Appointment)
	return appts, args.Error(1)
}

func (m *mockAppointmentRepo) ListBySpa(spaID string) ([]models.Appointment, error) {
	args := m.Called(spaID)
	appts, _ := args.Get(0).([]models.Appointment)
	return appts, args.Error(1)
}

func (m *mockAppointmentRepo) InsertAppointment(ctx context.Context, appt *models.Appointment, precheck func(existing []models.Appointment) error) error {
	args := m.Called(ctx, appt, precheck)
	return args.Error(0)
}

type mockOwnerRepo struct {
	mock.Mock
}

func (m *mockOwnerRepo) Create(owner *models.Owner) error {
	return m.Called(owner).Error(0)
}

func (m *mockOwnerRepo) GetByID(id string) (*models.Owner, error) {
	args := m.Called(id)
	owner, _ := args.Get(0).(*models.Owner)
	return owner, args.Error(1)
}

func (m *mockOwnerRepo) GetByEmail(email string) (*models.Owner, error) {
	args := m.Called(email)
	owner, _ := args.Get(0).(*models.Owner)
	return owner, args.Error(1)
}

func (m *mockOwnerRepo) GetByUsername(username string) (*models.Owner, error) {
	args := m.Called(username)
	owner, _ := args.Get(0).(*models.Owner)
	return owner, args.Error(1)
}

func (m *mockOwnerRepo) Update(owner *models.Owner) error {
	return m.Called(owner).Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyBookingCreated(spa *models.Spa, owner *models.Owner, appt *models.Appointment) error {
	return m.Called(spa, owner, appt).Error(0)
}

func (m *mockNotifier) SendReminder(payload models.ReminderPayload) error {
	return m.Called(payload).Error(0)
}

type mockReminders struct {
	mock.Mock
}

func (m *mockReminders) ScheduleReminder(payload models.ReminderPayload) error {
	return m.Called(payload).Error(0)
}
