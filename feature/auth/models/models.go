// Package models defines the persisted account schema.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is one account. Password holds the bcrypt hash, never plaintext.
type User struct {
	ID         string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Email      string    `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	Username   string    `gorm:"column:username;size:64;uniqueIndex" json:"username"`
	Password   string    `gorm:"column:password;size:100" json:"-"`
	LastActive time.Time `gorm:"column:last_active" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName overrides the GORM table name.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns identity and an initial activity timestamp.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.LastActive.IsZero() {
		u.LastActive = time.Now().UTC()
	}
	return nil
}
