package model

import (
	"time"

	"github.com/google/uuid"
)

type Coach struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"user_id"`
	ExperienceYears int       `db:"experience_years" json:"experience_years"`
	Description     string    `db:"description" json:"description"`
	ProfileImageURL *string   `db:"profile_image_url" json:"profile_image_url"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
