package domain

import "time"

// TransactionType indicates whether a transaction credited or debited the account.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
)

// Transaction is an immutable record of one balance-changing event on an account.
type Transaction struct {
	TransactionID  string          `json:"transactionID"`            // UUID
	Date           time.Time       `json:"date"`                     // When it was recorded
	Amount         Money           `json:"amount"`                   // Signed: positive deposit, negative withdrawal
	Balance        Money           `json:"balance"`                  // Running balance after this transaction
	Type           TransactionType `json:"type"`                     // DEPOSIT or WITHDRAWAL
	TransferID     string          `json:"transferID,omitempty"`     // Shared by both legs of a transfer
	CounterpartyID string          `json:"counterpartyID,omitempty"` // Other account of a transfer
}

// IsDeposit reports whether the transaction credited the account.
func (t Transaction) IsDeposit() bool {
	return t.Type == Deposit
}

// IsTransfer reports whether the transaction is one leg of a transfer.
func (t Transaction) IsTransfer() bool {
	return t.TransferID != ""
}
