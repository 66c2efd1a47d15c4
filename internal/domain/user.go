package domain

import "time"

// Роли пользователей
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User описывает пользователя
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func NewUser(email, passwordHash, firstName, lastName, role string) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		Active:       true,
	}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
