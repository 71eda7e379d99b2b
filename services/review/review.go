package review

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	reviewRepo "omnispa/database/repository/review"
	spaRepo "omnispa/database/repository/spa"
	userRepo "omnispa/database/repository/user"
	"omnispa/models"
	"omnispa/services/storage"
)

const maxReviewImages = 3

// ReviewService lets customers rate spas and attach photos.
type ReviewService interface {
	Create(userID, spaID string, rating int, comment string, images [][]byte) (*models.Review, error)
	ListBySpa(spaID string) ([]models.Review, error)
	AverageRating(spaID string) (float64, int, error)
}

type DefaultReviewService struct {
	Reviews reviewRepo.ReviewRepository
	Spas    spaRepo.SpaRepository
	Users   userRepo.UserRepository
	Storage storage.StorageService
}

func NewReviewService(reviews reviewRepo.ReviewRepository, spas spaRepo.SpaRepository,
	users userRepo.UserRepository, store storage.StorageService) *DefaultReviewService {
	return &DefaultReviewService{Reviews: reviews, Spas: spas, Users: users, Storage: store}
}

func (s *DefaultReviewService) Create(userID, spaID string, rating int, comment string, images [][]byte) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	if len(images) > maxReviewImages {
		return nil, fmt.Errorf("at most %d images per review", maxReviewImages)
	}

	spa, err := s.Spas.GetByID(spaID)
	if err != nil {
		return nil, err
	}
	if spa == nil {
		return nil, fmt.Errorf("spa %s not found", spaID)
	}

	review := &models.Review{
		ID:        uuid.New().String(),
		UserID:    userID,
		SpaID:     spaID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now(),
	}
	for _, data := range images {
		publicID, url, err := s.Storage.Upload(data, "reviews/"+spaID)
		if err != nil {
			return nil, fmt.Errorf("failed to upload review image: %w", err)
		}
		review.Images = append(review.Images, models.ReviewImage{
			PublicID:   publicID,
			URL:        url,
			UploadedAt: time.Now(),
		})
	}

	if err := s.Reviews.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListBySpa returns the spa's reviews newest first, with reviewer usernames
// joined in.
func (s *DefaultReviewService) ListBySpa(spaID string) ([]models.Review, error) {
	reviews, err := s.Reviews.ListBySpa(spaID)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return reviews, nil
	}

	ids := make([]string, 0, len(reviews))
	seen := map[string]bool{}
	for _, r := range reviews {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			ids = append(ids, r.UserID)
		}
	}
	users, err := s.Users.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}
	for i := range reviews {
		if name, ok := names[reviews[i].UserID]; ok {
			reviews[i].Username = name
		} else {
			reviews[i].Username = "Anonymous"
		}
	}
	return reviews, nil
}

func (s *DefaultReviewService) AverageRating(spaID string) (float64, int, error) {
	reviews, err := s.Reviews.ListBySpa(spaID)
	if err != nil {
		return 0, 0, err
	}
	if len(reviews) == 0 {
		return 0, 0, nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews)), len(reviews), nil
}
