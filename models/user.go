package models

import "time"

// Role is the authorization role carried in token claims. It is derived
// from a verified token and never persisted as its own entity.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleStorekeeper Role = "storekeeper"
	RoleCustomer    Role = "customer"
)

type Admin struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Contact      string    `json:"contact"`
	Branch       string    `json:"branch"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Employer is a staff record managed by admins. Position is a job title
// (serialized as "role" for wire compatibility) and is unrelated to the
// authorization Role, except that it becomes the role claim when the
// employer logs in.
type Employer struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Position     string    `json:"role"`
	Contact      string    `json:"contact"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Customer struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Contact      string    `json:"contact"`
	Address      string    `json:"address"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
