package models

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Subtitle    string    `json:"subtitle,omitempty" db:"subtitle"`
	Category    string    `json:"category" db:"category"`
	MediaURL    string    `json:"media_url,omitempty" db:"media_url"`
	Duration    int       `json:"duration,omitempty" db:"duration"`
	Author      string    `json:"author,omitempty" db:"author"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CreateArticleRequest struct {
	Title       string `json:"title" validate:"required,lte=255"`
	Subtitle    string `json:"subtitle" validate:"omitempty,lte=255"`
	Category    string `json:"category" validate:"required,oneof=nutrition hydration sleep fitness mindfulness general"`
	MediaURL    string `json:"media_url" validate:"omitempty,url"`
	Duration    int    `json:"duration" validate:"omitempty,gte=0"`
	Author      string `json:"author" validate:"omitempty,lte=255"`
	Description string `json:"description" validate:"omitempty,lte=5000"`
}
