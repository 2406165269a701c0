package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

// User is the host platform's account record. Only the fields needed to
// send an invite are kept.
type User struct {
	ID        types.UserID `json:"id" firestore:"id"`
	Email     string       `json:"email" firestore:"email"`
	FirstName string       `json:"first_name" firestore:"first_name"`
	CreatedAt time.Time    `json:"created_at" firestore:"created_at"`
}

// NewUser creates a new User instance
func NewUser(id types.UserID, email, firstName string) *User {
	return &User{
		ID:        id,
		Email:     email,
		FirstName: firstName,
		CreatedAt: time.Now(),
	}
}

// HasEmail reports whether an invite can be addressed to the user
func (u *User) HasEmail() bool {
	return u != nil && u.Email != ""
}

// Validate validates the user record
func (u *User) Validate() error {
	if u.ID.IsZero() {
		return goerr.New("user ID is required", goerr.V("id", u.ID))
	}
	return nil
}
