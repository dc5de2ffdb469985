package models

import "gorm.io/gorm"

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type User struct {
	gorm.Model
	Username string   `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Password string   `gorm:"size:255;not null" json:"-"`
	Email    *string  `gorm:"size:100" json:"email"`
	FullName *string  `gorm:"size:150" json:"full_name"`
	Role     UserRole `gorm:"size:10;default:'user'" json:"role"`
}

// DisplayName is the identity used when deriving generated file names.
func (u *User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Username
}
