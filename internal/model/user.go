package model

import (
	"time"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User represents a registered client of the coaching site. The password
// is persisted only as a bcrypt hash; the plaintext never reaches the model.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"passwordHash"`
	RegisterDate time.Time `json:"registerDate"`
	LastLogin    time.Time `json:"lastLogin"`
	Status       string    `json:"status"` // active, inactive
	// Bookings is a denormalized counter kept for file compatibility.
	// API responses always recompute it from the booking collection.
	Bookings int `json:"bookings"`
}

func (u *User) GetID() string   { return u.ID }
func (u *User) SetID(id string) { u.ID = id }
