package interfaces

//go:generate moq -out mocks/config_mock.go -pkg mocks . ConfigLoader

import (
	"context"

	"github.com/secmon-lab/slackinvite/pkg/domain/model"
)

// ConfigLoader reads the team credentials. Implementations must not cache:
// every call reflects the current file contents.
type ConfigLoader interface {
	Load(ctx context.Context) (*model.InviteConfig, error)
}
