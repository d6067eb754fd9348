package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleReceptionist Role = "receptionist"
	RoleHousekeeping Role = "housekeeping"
	RoleKitchen      Role = "kitchen"
	RoleCustomer     Role = "customer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleReceptionist, RoleHousekeeping, RoleKitchen, RoleCustomer:
		return true
	}
	return false
}

// StaffUser is the credential table behind the login screen. Staff accounts
// are seeded; customers may self-register.
type StaffUser struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string         `gorm:"size:120" json:"name"`
	Email       string         `gorm:"uniqueIndex;size:190" json:"email"`
	Password    string         `gorm:"size:190" json:"-"`
	Role        Role           `gorm:"size:32" json:"role"`
	Phone       string         `gorm:"size:32" json:"phone,omitempty"`
	Avatar      string         `gorm:"size:255" json:"avatar,omitempty"`
	Preferences datatypes.JSON `json:"preferences,omitempty"`
}
