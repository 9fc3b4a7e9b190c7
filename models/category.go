package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a commerce category. Slug is derived from EName at read
// time and never stored; see Slugify.
type Category struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ARName        string    `gorm:"not null" json:"name_ar"`
	EName         string    `gorm:"not null" json:"name_en"`
	ARDescription string    `json:"description_ar"`
	EDescription  string    `json:"description_en"`
	Image         string    `json:"image_url"`
	Slug          string    `gorm:"-" json:"slug"`
	CreatedAt     time.Time `json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Category) AfterFind(tx *gorm.DB) error {
	c.Slug = Slugify(c.EName)
	return nil
}
