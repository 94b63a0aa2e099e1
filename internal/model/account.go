package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Identity distinguishes the supervisor account from ordinary ones.
// Enumerated rather than boolean so new identity kinds can be added.
type Identity int

const (
	IdentityOrdinary Identity = 0
	IdentitySuper    Identity = 1
)

// Account represents a console login identity
type Account struct {
	BaseModel
	Username     string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"username" validate:"required"`
	Password     string     `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Identity     Identity   `gorm:"default:0" json:"identity"`
	Status       Status     `gorm:"default:1" json:"status"`
	TokenVersion string     `gorm:"type:varchar(255);default:''" json:"-"` // For single session enforcement
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// SetPassword hashes and sets the account's password
func (a *Account) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (a *Account) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password))
	return err == nil
}

// AccountResponse is used for API responses (without sensitive data)
type AccountResponse struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	Identity    Identity   `json:"identity"`
	Status      Status     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// ToResponse converts Account to AccountResponse
func (a *Account) ToResponse() AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Username:    a.Username,
		Identity:    a.Identity,
		Status:      a.Status,
		LastLoginAt: a.LastLoginAt,
	}
}

// CurrentUser is the per-request identity resolved by the auth middleware
type CurrentUser struct {
	AccountID uint
	Identity  Identity
}
