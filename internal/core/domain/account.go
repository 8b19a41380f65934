package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/bank_account_kata/internal/apperrors"
)

// Account holds a balance and the ordered transactions that produced it.
// It is not safe for concurrent mutation; callers serialize access.
type Account struct {
	accountID    string
	createdAt    time.Time
	balance      Money
	transactions []Transaction
	writer       StatementWriter
	now          func() time.Time
}

// AccountOption configures an Account at construction.
type AccountOption func(*Account)

// WithClock overrides the clock used to date transactions.
func WithClock(now func() time.Time) AccountOption {
	return func(a *Account) {
		a.now = now
	}
}

// WithStatementWriter sets the writer used by the print operations.
func WithStatementWriter(w StatementWriter) AccountOption {
	return func(a *Account) {
		a.writer = w
	}
}

// WithAccountID overrides the generated account ID.
func WithAccountID(id string) AccountOption {
	return func(a *Account) {
		a.accountID = id
	}
}

// NewAccount creates an account whose opening amount is recorded as a single deposit.
// A zero opening amount records nothing; a negative one is rejected.
func NewAccount(opening Money, options ...AccountOption) (*Account, error) {
	if opening.IsNegative() {
		return nil, fmt.Errorf("opening amount %s must not be negative: %w", opening, apperrors.ErrValidation)
	}

	a := &Account{
		accountID: uuid.NewString(),
		now:       time.Now,
	}
	for _, option := range options {
		option(a)
	}
	a.createdAt = a.now()

	if opening.IsPositive() {
		a.record(opening, "", "")
	}
	return a, nil
}

// AnEmptyAccount returns an account with a zero balance and no transactions.
func AnEmptyAccount(options ...AccountOption) *Account {
	a, _ := NewAccount(Zero, options...)
	return a
}

// AnAccountWith returns an account opened with the given amount. It panics on a
// negative amount; use NewAccount to handle that as an error.
func AnAccountWith(opening Money, options ...AccountOption) *Account {
	a, err := NewAccount(opening, options...)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Account) AccountID() string    { return a.accountID }
func (a *Account) CreatedAt() time.Time { return a.createdAt }
func (a *Account) Balance() Money       { return a.balance }

// Transactions returns a copy of the transaction log in chronological order.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Deposit credits a positive amount.
func (a *Account) Deposit(amount Money) error {
	if err := requirePositive(amount); err != nil {
		return err
	}
	a.record(amount, "", "")
	return nil
}

// Withdraw debits a positive amount not exceeding the balance.
func (a *Account) Withdraw(amount Money) error {
	if err := a.checkDebit(amount); err != nil {
		return err
	}
	a.record(amount.Neg(), "", "")
	return nil
}

// TransferTo moves amount from a to destination. Every check runs before either
// account is touched, so a failed transfer leaves both unchanged.
func (a *Account) TransferTo(destination *Account, amount Money) error {
	if destination == nil {
		return fmt.Errorf("transfer destination is required: %w", apperrors.ErrValidation)
	}
	if destination == a {
		return fmt.Errorf("cannot transfer to the same account: %w", apperrors.ErrValidation)
	}
	if err := a.checkDebit(amount); err != nil {
		return err
	}

	transferID := uuid.NewString()
	a.record(amount.Neg(), transferID, destination.accountID)
	destination.record(amount, transferID, a.accountID)
	return nil
}

// SetStatementWriter replaces the statement writer.
func (a *Account) SetStatementWriter(w StatementWriter) {
	a.writer = w
}

// PrintBalanceStatement hands the current balance to the statement writer.
func (a *Account) PrintBalanceStatement() error {
	if a.writer == nil {
		return apperrors.ErrNoStatementWriter
	}
	a.writer.PrintBalanceOf(a.balance)
	return nil
}

// PrintFullStatement hands every transaction, oldest first, to the statement writer.
func (a *Account) PrintFullStatement() error {
	if a.writer == nil {
		return apperrors.ErrNoStatementWriter
	}
	a.writer.PrintFullStatementWith(a.Transactions())
	return nil
}

// PrintFilteredStatement is PrintFullStatement restricted to transactions matching all filters.
func (a *Account) PrintFilteredStatement(filters ...TransactionFilter) error {
	if a.writer == nil {
		return apperrors.ErrNoStatementWriter
	}
	a.writer.PrintFullStatementWith(FilterTransactions(a.transactions, filters...))
	return nil
}

// Snapshot returns a read-only copy of the account state.
func (a *Account) Snapshot() AccountSnapshot {
	return AccountSnapshot{
		AccountID:    a.accountID,
		CreatedAt:    a.createdAt,
		Balance:      a.balance,
		Transactions: a.Transactions(),
	}
}

func (a *Account) checkDebit(amount Money) error {
	if err := requirePositive(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("cannot debit %s from balance %s: %w", amount, a.balance, apperrors.ErrInsufficientFunds)
	}
	return nil
}

// record appends a transaction for a signed amount and moves the balance with it.
func (a *Account) record(signed Money, transferID, counterpartyID string) {
	txType := Deposit
	if signed.IsNegative() {
		txType = Withdrawal
	}
	a.balance = a.balance.Add(signed)
	a.transactions = append(a.transactions, Transaction{
		TransactionID:  uuid.NewString(),
		Date:           a.now(),
		Amount:         signed,
		Balance:        a.balance,
		Type:           txType,
		TransferID:     transferID,
		CounterpartyID: counterpartyID,
	})
}

func requirePositive(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount %s must be positive: %w", amount, apperrors.ErrValidation)
	}
	return nil
}

// AccountSnapshot is a point-in-time copy of an account, safe to share.
type AccountSnapshot struct {
	AccountID    string        `json:"accountID"`
	CreatedAt    time.Time     `json:"createdAt"`
	Balance      Money         `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}
