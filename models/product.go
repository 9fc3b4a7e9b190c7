package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ARName        string         `json:"name_ar"` // Arabic Name
	EName         string         `gorm:"not null" json:"name_en"`
	ARDescription string         `json:"description_ar"`
	EDescription  string         `json:"description_en"`
	Price         float64        `gorm:"not null" json:"price"`
	SalePrice     *float64       `json:"sale_price"`
	InStock       bool           `gorm:"default:true" json:"in_stock"`
	IsFeatured    bool           `gorm:"index" json:"is_featured"`
	IsNew         bool           `json:"is_new"`
	CategoryID    *uuid.UUID     `gorm:"type:uuid;index" json:"category_id"`
	Category      *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Image         string         `json:"image_url"`
	VideoURL      string         `json:"video_url"`
	ExtraImages   pq.StringArray `gorm:"type:text[]" json:"additional_images"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	WidthCM       float64        `json:"width_cm"`
	HeightCM      float64        `json:"height_cm"`
	DepthCM       float64        `json:"depth_cm"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
