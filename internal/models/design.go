package models

import (
	"time"
)

// Design represents a user-submitted image entry stored in Firestore
type Design struct {
	ID          string    `json:"id" firestore:"-"` // Firestore document ID
	Title       string    `json:"title" firestore:"title"`
	ImageURL    string    `json:"image_url" firestore:"imageUrl"`
	Rating      int64     `json:"rating" firestore:"rating"` // LIKE count minus DISLIKE count
	OwnerID     string    `json:"owner_id" firestore:"ownerId"`
	OwnerName   string    `json:"owner_name" firestore:"ownerName"`
	OwnerAvatar string    `json:"owner_avatar,omitempty" firestore:"ownerAvatar"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

// Valid reports whether a decoded design carries the fields every well-formed
// document must have. The store enforces no schema, so documents failing this
// check are skipped at the repository boundary.
func (d *Design) Valid() bool {
	return d.Title != "" && d.ImageURL != "" && d.OwnerID != ""
}

// CreateDesignRequest defines the multipart form fields for submitting a design
type CreateDesignRequest struct {
	Title string `json:"title" form:"title" validate:"required,min=1,max=120"`
}
