package models

import "time"

// RecipePost is a shared recipe appearing on the social feed.
type RecipePost struct {
	ID           string    `json:"id"`
	RecipeID     string    `json:"recipe_id"`
	UserName     string    `json:"user_name"`
	UserPhotoURL string    `json:"user_photo_url,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	Caption      string    `json:"caption"`
	SharedAt     time.Time `json:"shared_at"`
}
