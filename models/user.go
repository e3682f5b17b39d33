package models

import (
	"errors"

	goval "github.com/go-passwd/validator"
	"github.com/leebenson/conform"
	"golang.org/x/crypto/bcrypt"
)

// User represents a registered account. Only the hash of the password is
// ever persisted.
type User struct {
	Model
	Username       string `json:"username" gorm:"size:80;uniqueIndex;not null"`
	HashedPassword string `json:"-" gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}

// VerifyPassword compares the given plaintext against the stored hash.
func (u *User) VerifyPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password))
}

// SetPassword hashes and stores the plaintext password on the user.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.HashedPassword = string(hashed)
	return nil
}

// ValidatePassword enforces the account password policy.
func ValidatePassword(password string) error {
	passwordValidator := goval.New(goval.MinLength(6, errors.New("password cant be less than 6 characters")))
	return passwordValidator.Validate(password)
}

type SignupRequest struct {
	Username string `json:"username" conform:"trim" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" conform:"trim" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ValidateWhiteSpaces trims string fields tagged with conform:"trim".
func ValidateWhiteSpaces(data interface{}) error {
	return conform.Strings(data)
}
