package repository

import "context"

// TransactionManager defines the interface for managing multi-document transactions.
// This allows the use case layer to handle transactions without depending on a specific database driver.
type TransactionManager interface {
	// Execute runs a function within a transaction on a client session.
	// If the function returns an error, the transaction is aborted. Otherwise, it's committed.
	// Repositories obtained from the factory are bound to the session.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	ProfileRepo() ProfileRepository
	FeaturedItemRepo() FeaturedItemRepository
}
