package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles
const (
	RoleGodAdmin      = "god_admin"
	RoleBusinessOwner = "business_owner"
	RoleCreator       = "creator"
)

// User statuses
const (
	UserStatusInvited = "invited"
	UserStatusActive  = "active"
)

type User struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"` // bcrypt hash
	Name      string
	Role      string `gorm:"not null;default:'creator'"`
	Status    string `gorm:"not null;default:'invited'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
