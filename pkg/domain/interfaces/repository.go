package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

// UserLookup resolves host platform users by ID
type UserLookup interface {
	// GetUserByID returns model.ErrUserNotFound (wrapped) when no such user exists
	GetUserByID(ctx context.Context, id types.UserID) (*model.User, error)
}

// Repository defines the interface for the host user directory
type Repository interface {
	UserLookup

	// SaveUser creates or replaces a user record
	SaveUser(ctx context.Context, user *model.User) error

	// Close closes the repository connection
	Close() error
}
