package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"secrets/config"
	"secrets/internal/domain/repository"
	mockRepo "secrets/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{TTL: ttl},
	}
}

// expectTransaction makes txManager run the callback against a factory that
// hands out userRepo, and return whatever the callback returns.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, userRepo repository.UserRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(userRepo)

			return fn(factory)
		}).
		Once()
}
