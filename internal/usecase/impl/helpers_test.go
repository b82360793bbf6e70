package impl

import (
	"context"
	"io"
	"log/slog"

	"indieneer/config"
	"indieneer/internal/domain/repository"
	mockRepo "indieneer/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

const testNamespace = "https://indieneer.test"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Firebase: &config.FirebaseConfig{
			Namespace: testNamespace,
		},
	}
}

func claimKey(name string) string {
	return testNamespace + "/" + name
}

// expectTransaction runs the callback against factory and returns whatever the callback returns.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
