package models

import "time"

// Review is a customer's rating of a spa. Rating is 1..5.
type Review struct {
	ID        string        `bson:"id" json:"id"`
	UserID    string        `bson:"user_id" json:"user_id"`
	SpaID     string        `bson:"spa_id" json:"spa_id"`
	Rating    int           `bson:"rating" json:"rating"`
	Comment   string        `bson:"comment" json:"comment"`
	Images    []ReviewImage `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`

	// Username is joined in for display and not stored on the review document.
	Username string `bson:"-" json:"username,omitempty"`
}

// ReviewImage is a photo attached to a review, stored in Cloudinary.
type ReviewImage struct {
	PublicID   string    `bson:"public_id" json:"public_id"`
	URL        string    `bson:"url" json:"url"`
	Caption    string    `bson:"caption,omitempty" json:"caption,omitempty"`
	UploadedAt time.Time `bson:"uploaded_at" json:"uploaded_at"`
}
