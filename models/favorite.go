package models

import "time"

// Favorite marks a spa saved by a user. A user can favorite a spa at most
// once; the repository enforces a unique (user_id, spa_id) index.
type Favorite struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	SpaID     string    `bson:"spa_id" json:"spa_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
