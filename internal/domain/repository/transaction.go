package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
type TransactionManager interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// NewPreferenceRepository returns a PreferenceRepository bound to the current transaction.
	NewPreferenceRepository() PreferenceRepository
}
