package dto

import (
	"time"

	"github.com/SscSPs/bank_account_kata/internal/core/domain"
)

// OpenAccountRequest defines the data needed to open a new account.
type OpenAccountRequest struct {
	InitialAmount string `json:"initialAmount" binding:"omitempty,nonnegative_amount"` // Optional, decimal string
}

// AmountRequest carries the amount of a deposit or withdrawal.
type AmountRequest struct {
	Amount string `json:"amount" binding:"required,positive_amount"`
}

// TransferRequest defines a transfer between two accounts.
type TransferRequest struct {
	FromAccountID string `json:"fromAccountID" binding:"required"`
	ToAccountID   string `json:"toAccountID" binding:"required,nefield=FromAccountID"`
	Amount        string `json:"amount" binding:"required,positive_amount"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID        string       `json:"accountID"`
	Balance          domain.Money `json:"balance"`
	CreatedAt        time.Time    `json:"createdAt"`
	TransactionCount int          `json:"transactionCount"`
}

// TransferResponse returns both accounts after a transfer.
type TransferResponse struct {
	From AccountResponse `json:"from"`
	To   AccountResponse `json:"to"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit   int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset  int    `form:"offset,default=0" binding:"min=0"`
	OrderBy string `form:"orderBy" binding:"omitempty,oneof=created balance"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ListTransactionsParams filters an account's transactions.
type ListTransactionsParams struct {
	Type string    `form:"type" binding:"omitempty,oneof=deposit withdrawal"`
	From time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To   time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
}

// Filters converts the params into domain filters. To is inclusive of the whole day.
func (p ListTransactionsParams) Filters() []domain.TransactionFilter {
	var filters []domain.TransactionFilter
	switch p.Type {
	case "deposit":
		filters = append(filters, domain.OnlyDeposits())
	case "withdrawal":
		filters = append(filters, domain.OnlyWithdrawals())
	}
	if !p.From.IsZero() || !p.To.IsZero() {
		to := p.To
		if !to.IsZero() {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		filters = append(filters, domain.Between(p.From, to))
	}
	return filters
}

// ListTransactionsResponse wraps an account's transactions.
type ListTransactionsResponse struct {
	AccountID    string               `json:"accountID"`
	Transactions []domain.Transaction `json:"transactions"`
}

// CompareBalancesResponse reports how two accounts compare by balance.
type CompareBalancesResponse struct {
	Comparison  int  `json:"comparison"`
	SameBalance bool `json:"sameBalance"`
}

// ToAccountResponse converts a domain.AccountSnapshot to AccountResponse DTO
func ToAccountResponse(acc *domain.AccountSnapshot) AccountResponse {
	return AccountResponse{
		AccountID:        acc.AccountID,
		Balance:          acc.Balance,
		CreatedAt:        acc.CreatedAt,
		TransactionCount: len(acc.Transactions),
	}
}

// ToListAccountResponse converts a slice of snapshots to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.AccountSnapshot) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i]) // Reuse the single converter
	}
	return res
}
