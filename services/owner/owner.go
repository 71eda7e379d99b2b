package owner

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	ownerRepo "omnispa/database/repository/owner"
	"omnispa/models"
	"omnispa/utils"
)

const sessionTTL = 72 * time.Hour

// OwnerService covers spa operator accounts.
type OwnerService interface {
	Register(req RegisterRequest) (*models.Owner, error)
	Login(email, password string) (string, *models.Owner, error)
	Logout(ownerID string) error
	GetByID(id string) (*models.Owner, error)
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type DefaultOwnerService struct {
	Owners ownerRepo.OwnerRepository
}

func NewOwnerService(owners ownerRepo.OwnerRepository) *DefaultOwnerService {
	return &DefaultOwnerService{Owners: owners}
}

func (s *DefaultOwnerService) Register(req RegisterRequest) (*models.Owner, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || len(req.Password) < 8 {
		return nil, fmt.Errorf("username, email and a password of at least 8 characters are required")
	}

	if existing, err := s.Owners.GetByEmail(req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}
	if existing, err := s.Owners.GetByUsername(req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	owner := &models.Owner{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.Owners.Create(owner); err != nil {
		return nil, err
	}
	return owner, nil
}

func (s *DefaultOwnerService) Login(email, password string) (string, *models.Owner, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	owner, err := s.Owners.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if owner == nil {
		return "", nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid email or password")
	}

	role := string(models.ActorOwner)
	token, err := utils.GenerateToken(owner.ID, owner.Email, role, sessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	if err := utils.SaveSessionToken(utils.GetAuthCacheClient(), role, owner.ID, token, sessionTTL); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}
	return token, owner, nil
}

func (s *DefaultOwnerService) Logout(ownerID string) error {
	return utils.RevokeSessionToken(utils.GetAuthCacheClient(), string(models.ActorOwner), ownerID)
}

func (s *DefaultOwnerService) GetByID(id string) (*models.Owner, error) {
	return s.Owners.GetByID(id)
}
