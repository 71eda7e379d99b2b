package userRepo

import "omnispa/models"

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByIDs(ids []string) ([]models.User, error)
	List() ([]models.User, error)
	Update(user *models.User) error
}
