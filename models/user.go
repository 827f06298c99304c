// models/user.go
package models

import "time"

const UserTable = "users"

type User struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:200;not null" json:"name"`
	Email          *string   `gorm:"size:200;uniqueIndex" json:"email,omitempty"`
	IsActive       bool      `gorm:"not null;default:true" json:"isActive"`
	MembershipDate time.Time `gorm:"not null" json:"membershipDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }
