package models

import "time"

type UserRole string

const (
	RoleTrafficChief    UserRole = "jefe_trafico"
	RoleOperationsChief UserRole = "jefe_operaciones"
)

// ValidRole reports whether s is one of the two enumerated roles.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case RoleTrafficChief, RoleOperationsChief:
		return true
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     string    `gorm:"size:100;not null;unique" json:"email"`
	Role      UserRole  `gorm:"type:user_role;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
