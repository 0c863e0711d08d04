package models

import "time"

// User is an ERP operator account. Password holds the bcrypt hash.
type User struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `json:"name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Password       string    `json:"-"`
	EmailConfirmed bool      `gorm:"default:false" json:"emailConfirmed"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
