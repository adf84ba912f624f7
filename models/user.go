package models

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"not null" json:"name"`
	Role         Role      `gorm:"type:VARCHAR(16);not null;default:'customer'" json:"role"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Purchaser is the slice of a User attached to orders in the admin listing.
type Purchaser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
