package spaRepo

import (
	"omnispa/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SpaRepository defines data access for spa listings, including the embedded
// service catalogue, images and the weekly availability template.
type SpaRepository interface {
	Create(spa *models.Spa) error
	GetByID(id string) (*models.Spa, error)
	GetAll() ([]models.Spa, error)
	GetByOwner(ownerID string) ([]models.Spa, error)
	GetByArea(area string) ([]models.Spa, error)
	Update(spa *models.Spa) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error

	// Search matches name, area, description and address case-insensitively.
	Search(query string, limit int64) ([]models.Spa, error)
	// SearchByServiceName returns spas offering a service whose name matches.
	SearchByServiceName(query string, limit int64) ([]models.Spa, error)

	// GetAvailability returns the template entry for a lowercase weekday name,
	// or nil when the spa has no schedule configured for that day.
	GetAvailability(spaID, day string) (*models.DayAvailability, error)
	UpsertAvailability(spaID string, entry models.DayAvailability) error

	AddImage(spaID string, img models.SpaImage) error
	RemoveImage(spaID, publicID string) error
}
