package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review holds a bilingual testimonial. There is intentionally no rating
// column; the storefront renders a fixed five-star strip.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ARComment string    `json:"comment_ar"`
	EComment  string    `json:"comment_en"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
