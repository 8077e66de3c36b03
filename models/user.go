package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Email        string         `gorm:"uniqueIndex;not null;size:200" json:"email"`
	FullName     string         `gorm:"not null;size:200" json:"full_name"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         Role           `gorm:"not null;size:20" json:"role"`
}

func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanReview reports whether the user may approve or reject submitted reports.
func (u *User) CanReview() bool {
	return u.IsAdmin()
}

// CanManageReportsFor reports whether the user may view or edit reports
// owned by the given identity.
func (u *User) CanManageReportsFor(userID string) bool {
	if u.IsAdmin() {
		return true
	}
	return u.Email == userID
}
