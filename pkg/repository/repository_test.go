package repository_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	"github.com/secmon-lab/slackinvite/pkg/repository"
)

// uniqueUserID avoids collisions between runs against a shared Firestore database
func uniqueUserID() types.UserID {
	return types.UserID(time.Now().UnixNano())
}

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("SaveUser", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		user := model.NewUser(uniqueUserID(), "ann@example.com", "Ann")

		err := repo.SaveUser(ctx, user)
		gt.NoError(t, err)

		retrieved, err := repo.GetUserByID(ctx, user.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, user.ID, retrieved.ID)
		gt.Equal(t, user.Email, retrieved.Email)
		gt.Equal(t, user.FirstName, retrieved.FirstName)
		gt.True(t, user.CreatedAt.Sub(retrieved.CreatedAt).Abs() < time.Second)
	})

	t.Run("SaveUser_Overwrite", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		id := uniqueUserID()

		gt.NoError(t, repo.SaveUser(ctx, model.NewUser(id, "", "Bob")))
		gt.NoError(t, repo.SaveUser(ctx, model.NewUser(id, "bob@example.com", "Bob")))

		retrieved, err := repo.GetUserByID(ctx, id)
		gt.NoError(t, err).Required()
		gt.Equal(t, "bob@example.com", retrieved.Email)
	})

	t.Run("SaveUser_Invalid", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		gt.Error(t, repo.SaveUser(ctx, nil))
		gt.Error(t, repo.SaveUser(ctx, model.NewUser(0, "x@example.com", "")))
	})

	t.Run("GetUserByID_NotFound", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		_, err := repo.GetUserByID(ctx, uniqueUserID())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrUserNotFound))
	})

	t.Run("GetUserByID_ZeroID", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		_, err := repo.GetUserByID(context.Background(), 0)
		gt.Error(t, err)
		gt.False(t, errors.Is(err, model.ErrUserNotFound))
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})
}

func TestMemoryRepository_ReturnsCopy(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()

	gt.NoError(t, repo.SaveUser(ctx, model.NewUser(5, "c@example.com", "Cy")))

	first, err := repo.GetUserByID(ctx, 5)
	gt.NoError(t, err).Required()
	first.Email = "changed@example.com"

	second, err := repo.GetUserByID(ctx, 5)
	gt.NoError(t, err).Required()
	gt.Equal(t, "c@example.com", second.Email)
}

func TestFirestoreRepository(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testRepository(t, func(t *testing.T) interfaces.Repository {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		repo, err := repository.NewFirestore(ctx, projectID, databaseID)
		gt.NoError(t, err)
		return repo
	})
}
