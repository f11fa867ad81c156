package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User represents an author on the platform. Accounts are provisioned by the
// identity provider; this service only resolves and references them.
type User struct {
	Model
	Username       string `json:"username" gorm:"unique;not null" binding:"required,min=2"`
	Email          string `json:"email" gorm:"unique" binding:"omitempty,email"`
	Fullname       string `json:"fullname"`
	HashedPassword string `json:"-"`
}

// HashPassword hashes the given password with bcrypt and stores the result.
func (u *User) HashPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.HashedPassword = string(hashed)
	return nil
}

// VerifyPassword reports whether password matches the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)) == nil
}
