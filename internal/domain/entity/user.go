// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account in the BudgetWise system.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	BudgetAlerts bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User entity.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		BudgetAlerts: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
