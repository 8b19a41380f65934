package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SscSPs/bank_account_kata/internal/apperrors"
	"github.com/SscSPs/bank_account_kata/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_account_kata/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_account_kata/internal/core/ports/services"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo    portsrepo.AccountRepositoryFacade
	writer         domain.StatementWriter
	accountOptions []domain.AccountOption
}

// ServiceOption is a functional option for configuring the account service
type ServiceOption func(*accountService)

// WithStatementWriter sets the writer attached to every account the service opens.
func WithStatementWriter(w domain.StatementWriter) ServiceOption {
	return func(s *accountService) {
		s.writer = w
	}
}

// WithAccountOptions adds options applied to every account the service opens.
func WithAccountOptions(options ...domain.AccountOption) ServiceOption {
	return func(s *accountService) {
		s.accountOptions = append(s.accountOptions, options...)
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) OpenAccount(ctx context.Context, initialAmount domain.Money) (*domain.AccountSnapshot, error) {
	options := slices.Clone(s.accountOptions)
	if s.writer != nil {
		options = append(options, domain.WithStatementWriter(s.writer))
	}

	account, err := domain.NewAccount(initialAmount, options...)
	if err != nil {
		s.LogWarn(ctx, err, "Rejected opening amount", slog.String("amount", initialAmount.String()))
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID()))
		return nil, fmt.Errorf("failed to open account: %w", err)
	}

	s.LogInfo(ctx, "Account opened",
		slog.String("account_id", account.AccountID()),
		slog.String("balance", account.Balance().String()))
	snap := account.Snapshot()
	return &snap, nil
}

func (s *accountService) GetAccount(ctx context.Context, accountID string) (*domain.AccountSnapshot, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err // Propagate error (including NotFound)
	}

	s.LogDebug(ctx, "Account retrieved successfully", slog.String("account_id", accountID))
	return account, nil
}

// ListAccounts pages in creation order. Ordering by balance sorts every account
// before the page is cut.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int, orderByBalance bool) ([]domain.AccountSnapshot, error) {
	repoLimit, repoOffset := limit, offset
	if orderByBalance {
		repoLimit, repoOffset = 0, 0
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, repoLimit, repoOffset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if accounts == nil {
		return []domain.AccountSnapshot{}, nil // Return empty slice if repo returns nil
	}
	if orderByBalance {
		slices.SortStableFunc(accounts, func(a, b domain.AccountSnapshot) int {
			return a.Balance.Cmp(b.Balance)
		})
		accounts = page(accounts, limit, offset)
	}

	s.LogDebug(ctx, "Accounts listed successfully", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) ListTransactions(ctx context.Context, accountID string, filters ...domain.TransactionFilter) ([]domain.Transaction, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return domain.FilterTransactions(account.Transactions, filters...), nil
}

func (s *accountService) CompareBalances(ctx context.Context, accountID string, otherAccountID string) (int, error) {
	var result int
	err := s.accountRepo.UpdateAccounts(ctx, []string{accountID, otherAccountID}, func(accounts map[string]*domain.Account) error {
		result = domain.OfBalances()(accounts[accountID], accounts[otherAccountID])
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to compare balances",
			slog.String("account_id", accountID),
			slog.String("other_account_id", otherAccountID))
		return 0, err
	}
	return result, nil
}

func (s *accountService) Deposit(ctx context.Context, accountID string, amount domain.Money) (*domain.AccountSnapshot, error) {
	return s.mutate(ctx, "Deposit", accountID, amount, func(a *domain.Account) error {
		return a.Deposit(amount)
	})
}

func (s *accountService) Withdraw(ctx context.Context, accountID string, amount domain.Money) (*domain.AccountSnapshot, error) {
	return s.mutate(ctx, "Withdrawal", accountID, amount, func(a *domain.Account) error {
		return a.Withdraw(amount)
	})
}

func (s *accountService) Transfer(ctx context.Context, fromAccountID string, toAccountID string, amount domain.Money) (*domain.AccountSnapshot, *domain.AccountSnapshot, error) {
	if fromAccountID == toAccountID {
		err := fmt.Errorf("cannot transfer to the same account: %w", apperrors.ErrValidation)
		s.LogWarn(ctx, err, "Transfer rejected", slog.String("account_id", fromAccountID))
		return nil, nil, err
	}

	var from, to domain.AccountSnapshot
	err := s.accountRepo.UpdateAccounts(ctx, []string{fromAccountID, toAccountID}, func(accounts map[string]*domain.Account) error {
		source, destination := accounts[fromAccountID], accounts[toAccountID]
		if err := source.TransferTo(destination, amount); err != nil {
			return err
		}
		from, to = source.Snapshot(), destination.Snapshot()
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Transfer failed",
			slog.String("from_account_id", fromAccountID),
			slog.String("to_account_id", toAccountID),
			slog.String("amount", amount.String()))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Transfer completed",
		slog.String("from_account_id", fromAccountID),
		slog.String("to_account_id", toAccountID),
		slog.String("amount", amount.String()))
	return &from, &to, nil
}

func (s *accountService) PrintBalanceStatement(ctx context.Context, accountID string) error {
	return s.print(ctx, accountID, func(a *domain.Account) error {
		return a.PrintBalanceStatement()
	})
}

func (s *accountService) PrintFullStatement(ctx context.Context, accountID string, filters ...domain.TransactionFilter) error {
	return s.print(ctx, accountID, func(a *domain.Account) error {
		if len(filters) == 0 {
			return a.PrintFullStatement()
		}
		return a.PrintFilteredStatement(filters...)
	})
}

// mutate applies op to one account under the repository lock and returns the result.
func (s *accountService) mutate(ctx context.Context, op string, accountID string, amount domain.Money, fn func(*domain.Account) error) (*domain.AccountSnapshot, error) {
	var snap domain.AccountSnapshot
	err := s.accountRepo.UpdateAccounts(ctx, []string{accountID}, func(accounts map[string]*domain.Account) error {
		account := accounts[accountID]
		if err := fn(account); err != nil {
			return err
		}
		snap = account.Snapshot()
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, op+" failed",
			slog.String("account_id", accountID),
			slog.String("amount", amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, op+" completed",
		slog.String("account_id", accountID),
		slog.String("amount", amount.String()),
		slog.String("balance", snap.Balance.String()))
	return &snap, nil
}

func (s *accountService) print(ctx context.Context, accountID string, fn func(*domain.Account) error) error {
	err := s.accountRepo.UpdateAccounts(ctx, []string{accountID}, func(accounts map[string]*domain.Account) error {
		return fn(accounts[accountID])
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to print statement", slog.String("account_id", accountID))
		return err
	}
	return nil
}

// logFailure logs domain rejections as warnings and anything else as errors.
func (s *accountService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrInsufficientFunds) {
		s.LogWarn(ctx, err, msg, keyvals...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

// page applies the repository's limit/offset rules to an already loaded slice.
func page(accounts []domain.AccountSnapshot, limit, offset int) []domain.AccountSnapshot {
	offset = max(offset, 0)
	if offset >= len(accounts) {
		return []domain.AccountSnapshot{}
	}
	accounts = accounts[offset:]
	if limit > 0 && limit < len(accounts) {
		accounts = accounts[:limit]
	}
	return accounts
}
