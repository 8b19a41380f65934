package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/bank_account_kata/internal/apperrors"
	"github.com/SscSPs/bank_account_kata/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_account_kata/internal/core/ports/repositories"
)

// AccountRepository keeps accounts in process memory. A single RWMutex
// serializes every mutation, which is what makes transfers atomic to readers.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    []string
}

// NewAccountRepository creates an empty in-memory account store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

// SaveAccount stores a new account. Saving an existing ID is a validation error.
func (r *AccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	if account == nil {
		return fmt.Errorf("account is required: %w", apperrors.ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := account.AccountID()
	if _, exists := r.accounts[id]; exists {
		return fmt.Errorf("account %s already exists: %w", id, apperrors.ErrValidation)
	}
	r.accounts[id] = account
	r.order = append(r.order, id)
	return nil
}

// FindAccountByID returns a snapshot of the account or apperrors.ErrNotFound.
func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.AccountSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	snap := account.Snapshot()
	return &snap, nil
}

// ListAccounts returns snapshots in creation order. A non-positive limit means no limit.
func (r *AccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.AccountSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.order) {
		return []domain.AccountSnapshot{}, nil
	}
	end := len(r.order)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}

	out := make([]domain.AccountSnapshot, 0, end-offset)
	for _, id := range r.order[offset:end] {
		out = append(out, r.accounts[id].Snapshot())
	}
	return out, nil
}

// UpdateAccounts resolves every id, then runs fn under the write lock.
func (r *AccountRepository) UpdateAccounts(ctx context.Context, accountIDs []string, fn func(accounts map[string]*domain.Account) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	selected := make(map[string]*domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		account, ok := r.accounts[id]
		if !ok {
			return fmt.Errorf("account %s: %w", id, apperrors.ErrNotFound)
		}
		selected[id] = account
	}
	return fn(selected)
}
