package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile mirrors the hosted auth provider's user row. ID is the
// provider-assigned user id, never generated locally.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminUser is the admin allow-list. A row existing for a user id is the
// sole authorization signal for the /admin surface.
type AdminUser struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (AdminUser) TableName() string { return "admin_users" }
