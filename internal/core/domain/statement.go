package domain

import "time"

// StatementWriter renders account statements. Account only calls it; where the
// output goes is up to the implementation.
type StatementWriter interface {
	// PrintBalanceOf renders a single balance value.
	PrintBalanceOf(balance Money)
	// PrintFullStatementWith renders transactions in the order given.
	PrintFullStatementWith(transactions []Transaction)
}

// TransactionFilter selects transactions for a filtered statement.
type TransactionFilter func(Transaction) bool

// OnlyDeposits keeps credits.
func OnlyDeposits() TransactionFilter {
	return func(t Transaction) bool { return t.Type == Deposit }
}

// OnlyWithdrawals keeps debits.
func OnlyWithdrawals() TransactionFilter {
	return func(t Transaction) bool { return t.Type == Withdrawal }
}

// Between keeps transactions dated within [from, to]. A zero bound is open.
func Between(from, to time.Time) TransactionFilter {
	return func(t Transaction) bool {
		if !from.IsZero() && t.Date.Before(from) {
			return false
		}
		if !to.IsZero() && t.Date.After(to) {
			return false
		}
		return true
	}
}

// FilterTransactions returns the transactions matching every filter, preserving order.
func FilterTransactions(transactions []Transaction, filters ...TransactionFilter) []Transaction {
	out := make([]Transaction, 0, len(transactions))
next:
	for _, t := range transactions {
		for _, f := range filters {
			if f != nil && !f(t) {
				continue next
			}
		}
		out = append(out, t)
	}
	return out
}
