package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectCategory groups portfolio projects (kitchens, dressing rooms, ...).
type ProjectCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ARName    string    `gorm:"not null" json:"name_ar"`
	EName     string    `gorm:"not null" json:"name_en"`
	Cover     string    `json:"cover_url"`
	Slug      string    `gorm:"-" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

func (pc *ProjectCategory) BeforeCreate(tx *gorm.DB) error {
	if pc.ID == uuid.Nil {
		pc.ID = uuid.New()
	}
	return nil
}

func (pc *ProjectCategory) AfterFind(tx *gorm.DB) error {
	pc.Slug = Slugify(pc.EName)
	return nil
}

type Project struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ARName        string         `json:"name_ar"`
	EName         string         `gorm:"not null" json:"name_en"`
	ARDescription string         `json:"description_ar"`
	EDescription  string         `json:"description_en"`
	CategoryID    *uuid.UUID     `gorm:"type:uuid;index" json:"category_id"`
	Images        []ProjectImage `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Cover returns the first image URL, which the gallery treats as the cover.
func (p *Project) Cover() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

// ProjectImage is one ordered gallery image. Position 0 is the cover.
type ProjectImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;index" json:"project_id"`
	URL       string    `gorm:"not null" json:"url"`
	Position  int       `json:"position"`
}

func (pi *ProjectImage) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == uuid.Nil {
		pi.ID = uuid.New()
	}
	return nil
}
