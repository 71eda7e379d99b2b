package ownerRepo

import "omnispa/models"

type OwnerRepository interface {
	Create(owner *models.Owner) error
	GetByID(id string) (*models.Owner, error)
	GetByEmail(email string) (*models.Owner, error)
	GetByUsername(username string) (*models.Owner, error)
	Update(owner *models.Owner) error
}
