package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
	StatusBanned    UserStatus = "banned"
)

// DefaultAvatarURL is used when a user signs up without an avatar.
const DefaultAvatarURL = "https://cdn-icons-png.flaticon.com/512/149/149071.png"

type User struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName        string     `gorm:"not null" json:"fullName"`
	Email           string     `gorm:"uniqueIndex;not null" json:"email"`
	Password        string     `gorm:"not null" json:"-"`
	Image           string     `json:"image"`
	Role            Role       `gorm:"type:varchar(16);default:user;not null" json:"role"`
	Status          UserStatus `gorm:"type:varchar(16);default:active;not null" json:"status"`
	StatusReason    *string    `gorm:"default:null" json:"statusReason,omitempty"`
	StatusChangedAt *time.Time `gorm:"default:null" json:"statusChangedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	if u.Image == "" {
		u.Image = DefaultAvatarURL
	}
	return nil
}

// IsValidUserStatus reports whether s is one of the fixed status values.
func IsValidUserStatus(s string) bool {
	switch UserStatus(s) {
	case StatusActive, StatusSuspended, StatusBanned:
		return true
	}
	return false
}

// IsValidRole reports whether r is one of the fixed role values.
func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// SetStatus applies a moderation status change and returns the column map
// for a single atomic update.
func (u *User) SetStatus(status UserStatus, reason *string, at time.Time) map[string]interface{} {
	u.Status = status
	u.StatusReason = reason
	u.StatusChangedAt = &at
	return map[string]interface{}{
		"status":            status,
		"status_reason":     reason,
		"status_changed_at": &at,
	}
}
