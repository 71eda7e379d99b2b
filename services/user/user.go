package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	favoriteRepo "omnispa/database/repository/favorite"
	spaRepo "omnispa/database/repository/spa"
	userRepo "omnispa/database/repository/user"
	"omnispa/models"
	"omnispa/utils"
)

const sessionTTL = 72 * time.Hour

// UserService covers customer accounts: registration, login and favorites.
type UserService interface {
	Register(username, email, password string) (*models.User, error)
	Login(email, password string) (string, *models.User, error)
	Logout(actor models.Actor) error
	GetByID(id string) (*models.User, error)
	ListAll() ([]models.User, error)

	ToggleFavorite(userID, spaID string) (bool, error)
	IsFavorite(userID, spaID string) (bool, error)
	ListFavorites(userID string) ([]models.Spa, error)
}

type DefaultUserService struct {
	Users     userRepo.UserRepository
	Favorites favoriteRepo.FavoriteRepository
	Spas      spaRepo.SpaRepository

	// revoke ends a session in the allow-list. Tests swap it out.
	revoke func(role, subject string) error
}

func NewUserService(users userRepo.UserRepository, favorites favoriteRepo.FavoriteRepository, spas spaRepo.SpaRepository) *DefaultUserService {
	return &DefaultUserService{
		Users:     users,
		Favorites: favorites,
		Spas:      spas,
		revoke: func(role, subject string) error {
			return utils.RevokeSessionToken(utils.GetAuthCacheClient(), role, subject)
		},
	}
}

func (s *DefaultUserService) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || len(password) < 8 {
		return nil, fmt.Errorf("username, email and a password of at least 8 characters are required")
	}

	if existing, err := s.Users.GetByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}
	if existing, err := s.Users.GetByUsername(username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *DefaultUserService) Login(email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Users.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid email or password")
	}

	role := string(models.ActorCustomer)
	if user.IsAdmin {
		role = string(models.ActorAdmin)
	}
	token, err := utils.GenerateToken(user.ID, user.Email, role, sessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	if err := utils.SaveSessionToken(utils.GetAuthCacheClient(), role, user.ID, token, sessionTTL); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}
	return token, user, nil
}

// Logout revokes the session under the role it was issued with: an admin's
// session lives under the admin key, not the customer one.
func (s *DefaultUserService) Logout(actor models.Actor) error {
	role := string(actor.Role)
	if role == "" {
		role = string(models.ActorCustomer)
	}
	return s.revoke(role, actor.ID)
}

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	return s.Users.GetByID(id)
}

// ListAll returns every customer account. Admin-only; gated at the route.
func (s *DefaultUserService) ListAll() ([]models.User, error) {
	return s.Users.List()
}

func (s *DefaultUserService) ToggleFavorite(userID, spaID string) (bool, error) {
	spa, err := s.Spas.GetByID(spaID)
	if err != nil {
		return false, err
	}
	if spa == nil {
		return false, fmt.Errorf("spa %s not found", spaID)
	}
	return s.Favorites.Toggle(userID, spaID)
}

func (s *DefaultUserService) IsFavorite(userID, spaID string) (bool, error) {
	return s.Favorites.Check(userID, spaID)
}

func (s *DefaultUserService) ListFavorites(userID string) ([]models.Spa, error) {
	favs, err := s.Favorites.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	spas := make([]models.Spa, 0, len(favs))
	for _, fav := range favs {
		spa, err := s.Spas.GetByID(fav.SpaID)
		if err != nil {
			return nil, err
		}
		if spa != nil {
			spas = append(spas, *spa)
		}
	}
	return spas, nil
}
