package models

import "time"

// Spa is the main business listing. Services, images, operating hours and the
// weekly availability template are embedded in the spa document.
type Spa struct {
	ID            string            `bson:"id" json:"id"`
	OwnerID       string            `bson:"owner_id" json:"owner_id"`
	Name          string            `bson:"name" json:"name"`
	Description   string            `bson:"description" json:"description"`
	Address       string            `bson:"address" json:"address"`
	Phone         string            `bson:"phone" json:"phone"`
	Email         string            `bson:"email" json:"email"`
	Area          string            `bson:"area" json:"area"`
	MapsEmbedURL  string            `bson:"maps_embed_url,omitempty" json:"maps_embed_url,omitempty"`
	TermsAccepted bool              `bson:"terms_accepted" json:"terms_accepted"`
	Services      []Service         `bson:"services" json:"services"`
	Images        []SpaImage        `bson:"images" json:"images"`
	Hours         []OperatingHours  `bson:"operating_hours" json:"operating_hours"`
	Availability  []DayAvailability `bson:"availability" json:"availability"`
	// BookingVersion is bumped inside every appointment-commit transaction so
	// concurrent commits for the same spa collide and exactly one wins.
	BookingVersion int64     `bson:"booking_version" json:"-"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// Service is one treatment a spa offers. Duration is in minutes.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Category    string  `bson:"category" json:"category"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Duration    int     `bson:"duration" json:"duration"`
	Price       float64 `bson:"price" json:"price"`
}

// SpaImage is an uploaded facility photo stored in Cloudinary.
type SpaImage struct {
	PublicID  string `bson:"public_id" json:"public_id"`
	URL       string `bson:"url" json:"url"`
	IsPrimary bool   `bson:"is_primary" json:"is_primary"`
	Caption   string `bson:"caption,omitempty" json:"caption,omitempty"`
}

// PrimaryImage returns the primary facility photo, or nil if none is set.
func (s *Spa) PrimaryImage() *SpaImage {
	for i := range s.Images {
		if s.Images[i].IsPrimary {
			return &s.Images[i]
		}
	}
	return nil
}

// OperatingHours is the display schedule shown on a spa's profile page.
// DayType is "weekday" or "weekend"; times are "HH:MM".
type OperatingHours struct {
	DayType     string `bson:"day_type" json:"day_type"`
	OpeningTime string `bson:"opening_time" json:"opening_time"`
	ClosingTime string `bson:"closing_time" json:"closing_time"`
}

// DayAvailability is one weekday entry of the bookable weekly template.
// Day is a lowercase weekday name. A spa without an entry for a given day has
// no schedule configured for it, which is distinct from an explicit closure.
// TimeSlots is kept raw as declared by the owner: unsorted, possibly
// overlapping, possibly malformed. The booking engine is responsible for
// tolerating dirty entries.
type DayAvailability struct {
	Day       string         `bson:"day" json:"day"`
	IsClosed  bool           `bson:"is_closed" json:"is_closed"`
	TimeSlots []TimeInterval `bson:"time_slots" json:"time_slots"`
}

// TimeInterval is a textual open interval within a day. Start and End accept
// both "hh:mm AM/PM" and 24-hour "HH:MM" encodings and are echoed back in
// whichever form they were declared.
type TimeInterval struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}
