package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/bank_account_kata/internal/apperrors"
	"github.com/SscSPs/bank_account_kata/internal/core/domain"
)

// MockStatementWriter is a mock type for the StatementWriter interface
type MockStatementWriter struct {
	mock.Mock
}

func (m *MockStatementWriter) PrintBalanceOf(balance domain.Money) {
	m.Called(balance)
}

func (m *MockStatementWriter) PrintFullStatementWith(transactions []domain.Transaction) {
	m.Called(transactions)
}

var _ domain.StatementWriter = (*MockStatementWriter)(nil)

// assertSameBalance compares accounts the way the balance comparator does.
func assertSameBalance(t *testing.T, expected, actual *domain.Account) {
	t.Helper()
	assert.Zero(t, domain.OfBalances()(expected, actual),
		"balance %s, want %s", actual.Balance(), expected.Balance())
}

// assertBalanceMatchesLog checks the balance equals the sum of transaction amounts
// and the running balance of the last transaction.
func assertBalanceMatchesLog(t *testing.T, a *domain.Account) {
	t.Helper()
	sum := domain.Zero
	txns := a.Transactions()
	for _, txn := range txns {
		sum = sum.Add(txn.Amount)
	}
	assert.True(t, sum.Equal(a.Balance()), "sum %s != balance %s", sum, a.Balance())
	if len(txns) > 0 {
		assert.True(t, txns[len(txns)-1].Balance.Equal(a.Balance()))
	}
}

func TestCompareTwoAccountsHaveTheSameBalance(t *testing.T) {
	account := domain.AnAccountWith(domain.AnAmountOf(10.0))
	assertSameBalance(t, domain.AnAccountWith(domain.AnAmountOf(10.0)), account)
	assert.True(t, domain.SameBalance(account, domain.AnAccountWith(domain.AnAmountOf(10.00))))
}

func TestDepositAnAmountToIncreaseTheBalance(t *testing.T) {
	account := domain.AnEmptyAccount()

	require.NoError(t, account.Deposit(domain.AnAmountOf(10.0)))

	assertSameBalance(t, domain.AnAccountWith(domain.AnAmountOf(10.0)), account)
	assertBalanceMatchesLog(t, account)
}

func TestWithdrawAnAmountToDecreaseTheBalance(t *testing.T) {
	account := domain.AnAccountWith(domain.AnAmountOf(20.0))

	require.NoError(t, account.Withdraw(domain.AnAmountOf(10.0)))

	assertSameBalance(t, domain.AnAccountWith(domain.AnAmountOf(10.0)), account)
	assertBalanceMatchesLog(t, account)
}

func TestWithdrawMoreThanTheBalanceFails(t *testing.T) {
	account := domain.AnAccountWith(domain.AnAmountOf(20.0))

	err := account.Withdraw(domain.AnAmountOf(30.0))

	require.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assertSameBalance(t, domain.AnAccountWith(domain.AnAmountOf(20.0)), account)
	assert.Len(t, account.Transactions(), 1)
}

func TestWithdrawTheWholeBalance(t *testing.T) {
	account := domain.AnAccountWith(domain.AnAmountOf(20.0))

	require.NoError(t, account.Withdraw(domain.AnAmountOf(20.0)))

	assert.True(t, account.Balance().IsZero())
}

func TestTransferMoneyFromOneAccountToAnother(t *testing.T) {
	destination := domain.AnEmptyAccount()
	source := domain.AnAccountWith(domain.AnAmountOf(50.0))

	require.NoError(t, source.TransferTo(destination, domain.AnAmountOf(20.0)))

	assertSameBalance(t, domain.AnAccountWith(domain.AnAmountOf(30.0)), source)
	assertSameBalance(t, domain.AnAccountWith(domain.AnAmountOf(20.0)), destination)
	assertBalanceMatchesLog(t, source)
	assertBalanceMatchesLog(t, destination)

	debit := source.Transactions()[1]
	credit := destination.Transactions()[0]
	assert.Equal(t, domain.Withdrawal, debit.Type)
	assert.Equal(t, domain.Deposit, credit.Type)
	assert.NotEmpty(t, debit.TransferID)
	assert.Equal(t, debit.TransferID, credit.TransferID)
	assert.Equal(t, destination.AccountID(), debit.CounterpartyID)
	assert.Equal(t, source.AccountID(), credit.CounterpartyID)
}

func TestTransferMoreThanTheBalanceFails(t *testing.T) {
	destination := domain.AnEmptyAccount()
	source := domain.AnAccountWith(domain.AnAmountOf(20.0))

	err := source.TransferTo(destination, domain.AnAmountOf(30.0))

	require.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assertSameBalance(t, domain.AnAccountWith(domain.AnAmountOf(20.0)), source)
	assert.True(t, destination.Balance().IsZero())
	assert.Empty(t, destination.Transactions())
	assert.Len(t, source.Transactions(), 1)
}

func TestTransferRejectsInvalidDestination(t *testing.T) {
	source := domain.AnAccountWith(domain.AnAmountOf(20.0))

	assert.ErrorIs(t, source.TransferTo(nil, domain.AnAmountOf(5.0)), apperrors.ErrValidation)
	assert.ErrorIs(t, source.TransferTo(source, domain.AnAmountOf(5.0)), apperrors.ErrValidation)
	assertSameBalance(t, domain.AnAccountWith(domain.AnAmountOf(20.0)), source)
}

func TestHasTheRightBalanceAfterANumberOfTransactions(t *testing.T) {
	account := domain.AnEmptyAccount()

	for _, amount := range []float64{10.0, 80.0, 5.0} {
		require.NoError(t, account.Deposit(domain.AnAmountOf(amount)))
	}
	for _, amount := range []float64{15.0, 10.0} {
		require.NoError(t, account.Withdraw(domain.AnAmountOf(amount)))
	}

	assertSameBalance(t, domain.AnAccountWith(domain.AnAmountOf(70.0)), account)
	assertBalanceMatchesLog(t, account)
	assert.Len(t, account.Transactions(), 5)
}

func TestRepeatedSmallDepositsDoNotDrift(t *testing.T) {
	account := domain.AnEmptyAccount()
	for i := 0; i < 10; i++ {
		require.NoError(t, account.Deposit(domain.AnAmountOf(0.1)))
	}
	assert.True(t, account.Balance().Equal(domain.AnAmountOf(1.0)), "balance %s", account.Balance())
}

func TestNonPositiveAmountsAreRejected(t *testing.T) {
	tests := []struct {
		name   string
		amount domain.Money
	}{
		{name: "zero", amount: domain.Zero},
		{name: "negative", amount: domain.AnAmountOf(-5.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := domain.AnAccountWith(domain.AnAmountOf(20.0))
			other := domain.AnEmptyAccount()

			assert.ErrorIs(t, account.Deposit(tt.amount), apperrors.ErrValidation)
			assert.ErrorIs(t, account.Withdraw(tt.amount), apperrors.ErrValidation)
			assert.ErrorIs(t, account.TransferTo(other, tt.amount), apperrors.ErrValidation)
			assert.Len(t, account.Transactions(), 1)
			assert.Empty(t, other.Transactions())
		})
	}
}

func TestOpeningAmount(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }

	account := domain.AnAccountWith(domain.AnAmountOf(30.0), domain.WithClock(clock), domain.WithAccountID("acc-1"))
	require.Len(t, account.Transactions(), 1)
	opening := account.Transactions()[0]
	assert.Equal(t, domain.Deposit, opening.Type)
	assert.True(t, opening.Amount.Equal(domain.AnAmountOf(30.0)))
	assert.Equal(t, clock(), opening.Date)
	assert.Equal(t, "acc-1", account.AccountID())
	assert.Equal(t, clock(), account.CreatedAt())

	assert.Empty(t, domain.AnAccountWith(domain.Zero).Transactions())

	_, err := domain.NewAccount(domain.AnAmountOf(-1.0))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Panics(t, func() { domain.AnAccountWith(domain.AnAmountOf(-1.0)) })
}

func TestTransactionsReturnsACopy(t *testing.T) {
	account := domain.AnAccountWith(domain.AnAmountOf(10.0))
	txns := account.Transactions()
	txns[0].Amount = domain.AnAmountOf(999.0)

	assert.True(t, account.Transactions()[0].Amount.Equal(domain.AnAmountOf(10.0)))
}

func TestPrintOutAnAccountBalance(t *testing.T) {
	writer := new(MockStatementWriter)
	writer.On("PrintBalanceOf", mock.AnythingOfType("domain.Money")).Return().Once()

	account := domain.AnAccountWith(domain.AnAmountOf(30.0))
	account.SetStatementWriter(writer)
	require.NoError(t, account.PrintBalanceStatement())

	writer.AssertExpectations(t)
	writer.AssertNumberOfCalls(t, "PrintBalanceOf", 1)
	printed := writer.Calls[0].Arguments.Get(0).(domain.Money)
	assert.True(t, printed.Equal(domain.AnAmountOf(30.0)))
}

func TestPrintOutAFullStatement(t *testing.T) {
	writer := new(MockStatementWriter)
	writer.On("PrintFullStatementWith", mock.AnythingOfType("[]domain.Transaction")).Return().Once()

	account := domain.AnEmptyAccount()
	account.SetStatementWriter(writer)
	require.NoError(t, account.PrintFullStatement())

	writer.AssertExpectations(t)
	writer.AssertNotCalled(t, "PrintBalanceOf", mock.Anything)
}

func TestPrintingWithoutAWriterFails(t *testing.T) {
	account := domain.AnEmptyAccount()

	assert.ErrorIs(t, account.PrintBalanceStatement(), apperrors.ErrNoStatementWriter)
	assert.ErrorIs(t, account.PrintFullStatement(), apperrors.ErrValidation)
	assert.ErrorIs(t, account.PrintFilteredStatement(domain.OnlyDeposits()), apperrors.ErrNoStatementWriter)
}
