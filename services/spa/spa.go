package spa

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	spaRepo "omnispa/database/repository/spa"
	"omnispa/models"
	"omnispa/services/storage"
)

// SpaService manages the spa directory: profiles, services, operating hours,
// availability templates and the image carousel.
type SpaService interface {
	Create(ownerID string, spa *models.Spa) (*models.Spa, error)
	GetByID(id string) (*models.Spa, error)
	List() ([]models.Spa, error)
	ListByArea(area string) ([]models.Spa, error)
	ListByOwner(ownerID string) ([]models.Spa, error)
	Update(actor models.Actor, spa *models.Spa) error
	Delete(actor models.Actor, id string) error

	Suggest(query string) ([]Suggestion, error)
	Search(query string) (SearchResults, error)
	Options() (QuizOptions, error)
	Recommend(answers QuizAnswers) ([]Recommendation, error)

	SetAvailability(actor models.Actor, spaID string, entry models.DayAvailability) error
	AddImage(actor models.Actor, spaID string, data []byte, caption string) (*models.SpaImage, error)
	RemoveImage(actor models.Actor, spaID, publicID string) error
}

type DefaultSpaService struct {
	Repo    spaRepo.SpaRepository
	Storage storage.StorageService

	// Cache is optional; nil skips caching entirely.
	Cache *redis.Client
}

func NewSpaService(repo spaRepo.SpaRepository, store storage.StorageService, cache *redis.Client) *DefaultSpaService {
	return &DefaultSpaService{Repo: repo, Storage: store, Cache: cache}
}

var validDays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func (s *DefaultSpaService) Create(ownerID string, spa *models.Spa) (*models.Spa, error) {
	if strings.TrimSpace(spa.Name) == "" {
		return nil, fmt.Errorf("spa name is required")
	}
	if !spa.TermsAccepted {
		return nil, fmt.Errorf("terms must be accepted before listing a spa")
	}

	spa.ID = uuid.New().String()
	spa.OwnerID = ownerID
	spa.CreatedAt = time.Now()
	spa.UpdatedAt = spa.CreatedAt
	for i := range spa.Services {
		if spa.Services[i].ID == "" {
			spa.Services[i].ID = uuid.New().String()
		}
	}
	if err := s.Repo.Create(spa); err != nil {
		return nil, err
	}
	s.invalidate("")
	return spa, nil
}

func (s *DefaultSpaService) GetByID(id string) (*models.Spa, error) {
	return s.cachedGet(id)
}

func (s *DefaultSpaService) List() ([]models.Spa, error) {
	return s.cachedList()
}

func (s *DefaultSpaService) ListByArea(area string) ([]models.Spa, error) {
	return s.Repo.GetByArea(area)
}

func (s *DefaultSpaService) ListByOwner(ownerID string) ([]models.Spa, error) {
	return s.Repo.GetByOwner(ownerID)
}

func (s *DefaultSpaService) Update(actor models.Actor, spa *models.Spa) error {
	existing, err := s.authorize(actor, spa.ID)
	if err != nil {
		return err
	}

	// Ownership and booking bookkeeping never change through profile updates.
	spa.OwnerID = existing.OwnerID
	spa.BookingVersion = existing.BookingVersion
	spa.CreatedAt = existing.CreatedAt
	for i := range spa.Services {
		if spa.Services[i].ID == "" {
			spa.Services[i].ID = uuid.New().String()
		}
	}
	if err := s.Repo.Update(spa); err != nil {
		return err
	}
	s.invalidate(spa.ID)
	return nil
}

func (s *DefaultSpaService) Delete(actor models.Actor, id string) error {
	if _, err := s.authorize(actor, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *DefaultSpaService) SetAvailability(actor models.Actor, spaID string, entry models.DayAvailability) error {
	if _, err := s.authorize(actor, spaID); err != nil {
		return err
	}
	entry.Day = strings.ToLower(strings.TrimSpace(entry.Day))
	if !validDays[entry.Day] {
		return fmt.Errorf("unknown day %q", entry.Day)
	}
	if err := s.Repo.UpsertAvailability(spaID, entry); err != nil {
		return err
	}
	s.invalidate(spaID)
	return nil
}

func (s *DefaultSpaService) AddImage(actor models.Actor, spaID string, data []byte, caption string) (*models.SpaImage, error) {
	spa, err := s.authorize(actor, spaID)
	if err != nil {
		return nil, err
	}

	publicID, url, err := s.Storage.Upload(data, "spas/"+spaID)
	if err != nil {
		return nil, fmt.Errorf("failed to upload spa image: %w", err)
	}
	img := models.SpaImage{
		PublicID:  publicID,
		URL:       url,
		IsPrimary: len(spa.Images) == 0,
		Caption:   caption,
	}
	if err := s.Repo.AddImage(spaID, img); err != nil {
		return nil, err
	}
	s.invalidate(spaID)
	return &img, nil
}

func (s *DefaultSpaService) RemoveImage(actor models.Actor, spaID, publicID string) error {
	if _, err := s.authorize(actor, spaID); err != nil {
		return err
	}
	if err := s.Storage.Delete(publicID); err != nil {
		return fmt.Errorf("failed to delete spa image: %w", err)
	}
	if err := s.Repo.RemoveImage(spaID, publicID); err != nil {
		return err
	}
	s.invalidate(spaID)
	return nil
}

// authorize loads the spa and verifies the actor may manage it: its owner, or
// an admin.
func (s *DefaultSpaService) authorize(actor models.Actor, spaID string) (*models.Spa, error) {
	spa, err := s.Repo.GetByID(spaID)
	if err != nil {
		return nil, err
	}
	if spa == nil {
		return nil, fmt.Errorf("spa %s not found", spaID)
	}
	if actor.IsAdmin() {
		return spa, nil
	}
	if !actor.IsOwner() || actor.ID != spa.OwnerID {
		return nil, fmt.Errorf("not authorized to manage spa %s", spaID)
	}
	return spa, nil
}
