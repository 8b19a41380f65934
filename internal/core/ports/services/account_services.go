package services

import (
	"context"

	"github.com/SscSPs/bank_account_kata/internal/core/domain"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves a specific account by its unique identifier.
	GetAccount(ctx context.Context, accountID string) (*domain.AccountSnapshot, error)

	// ListAccounts retrieves a page of accounts, in creation order or by ascending balance.
	ListAccounts(ctx context.Context, limit int, offset int, orderByBalance bool) ([]domain.AccountSnapshot, error)

	// ListTransactions returns an account's transactions matching every filter, oldest first.
	ListTransactions(ctx context.Context, accountID string, filters ...domain.TransactionFilter) ([]domain.Transaction, error)

	// CompareBalances compares two accounts by balance only (-1, 0, +1).
	CompareBalances(ctx context.Context, accountID string, otherAccountID string) (int, error)
}

// AccountWriterSvc defines balance-changing operations
type AccountWriterSvc interface {
	// OpenAccount creates an account, recording a positive initial amount as its first deposit.
	OpenAccount(ctx context.Context, initialAmount domain.Money) (*domain.AccountSnapshot, error)

	// Deposit credits an account.
	Deposit(ctx context.Context, accountID string, amount domain.Money) (*domain.AccountSnapshot, error)

	// Withdraw debits an account; fails with apperrors.ErrInsufficientFunds on overdraft.
	Withdraw(ctx context.Context, accountID string, amount domain.Money) (*domain.AccountSnapshot, error)

	// Transfer moves money between two accounts atomically and returns both after the move.
	Transfer(ctx context.Context, fromAccountID string, toAccountID string, amount domain.Money) (from *domain.AccountSnapshot, to *domain.AccountSnapshot, err error)
}

// AccountStatementSvc defines statement printing through the configured StatementWriter
type AccountStatementSvc interface {
	// PrintBalanceStatement prints the current balance of an account.
	PrintBalanceStatement(ctx context.Context, accountID string) error

	// PrintFullStatement prints the account's transactions, restricted by filters if any are given.
	PrintFullStatement(ctx context.Context, accountID string, filters ...domain.TransactionFilter) error
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountStatementSvc
}
