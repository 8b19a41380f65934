package repositories

import (
	"context"

	"github.com/SscSPs/bank_account_kata/internal/core/domain"
)

// AccountReader defines read operations for account data.
// Readers receive snapshots, never the live entity.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.AccountSnapshot, error)

	// ListAccounts retrieves a page of accounts in creation order.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.AccountSnapshot, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount stores a new account.
	SaveAccount(ctx context.Context, account *domain.Account) error

	// UpdateAccounts runs fn with the live accounts for accountIDs while holding the
	// store's write lock. All ids must exist; nothing is locked across calls.
	UpdateAccounts(ctx context.Context, accountIDs []string, fn func(accounts map[string]*domain.Account) error) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
