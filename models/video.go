package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Video struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ARTitle   string    `json:"title_ar"`
	ETitle    string    `gorm:"not null" json:"title_en"`
	SrcURL    string    `gorm:"not null" json:"src_url"`
	Thumbnail string    `json:"thumbnail_url"`
	Duration  int       `json:"duration_seconds"`
	CreatedAt time.Time `json:"created_at"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
