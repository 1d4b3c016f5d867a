package entity

import (
	"strings"
	"time"

	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
)

// Role defines the access level of a user
type Role string

// User roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents an account holding a spendable credit balance.
// One credit buys one image operation; the balance is never negative.
type User struct {
	ID           uint64
	Email        string
	PasswordHash string // empty for identity-provider-only accounts
	Role         Role
	balance      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new user with a zero balance
func NewUser(email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidEmail
	}

	now := timeProvider.Now()
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		balance:      0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Balance returns the current balance in credits
func (u *User) Balance() int64 {
	return u.balance
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (u *User) SetBalance(credits int64, timeProvider coreport.TimeProvider) {
	u.balance = credits
	u.UpdatedAt = timeProvider.Now()
}

// SetBalanceRaw restores a persisted balance without touching timestamps.
// Repositories use it when hydrating an entity from a database row.
func (u *User) SetBalanceRaw(credits int64) {
	u.balance = credits
}

// CanAfford reports whether the user has enough credits for a spend of cost
func (u *User) CanAfford(cost int64) bool {
	return u.balance >= cost
}

// ApplyCredit adds credits to the balance
func (u *User) ApplyCredit(credits int64, timeProvider coreport.TimeProvider) error {
	if credits < 0 {
		return errs.ErrNegativeAmount
	}
	u.balance += credits
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplyDebit subtracts credits from the balance if sufficient balance exists.
// Returns ErrInsufficientBalance otherwise.
func (u *User) ApplyDebit(credits int64, timeProvider coreport.TimeProvider) error {
	if credits < 0 {
		return errs.ErrNegativeAmount
	}
	if u.balance < credits {
		return errs.ErrInsufficientBalance
	}
	u.balance -= credits
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
