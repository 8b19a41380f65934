package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/bank_account_kata/internal/core/domain"
)

func TestTransaction_Kind(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		wantDeposit bool
		wantXfer    bool
	}{
		{
			name:        "plain deposit",
			transaction: domain.Transaction{Type: domain.Deposit, Amount: domain.AnAmountOf(10)},
			wantDeposit: true,
		},
		{
			name:        "plain withdrawal",
			transaction: domain.Transaction{Type: domain.Withdrawal, Amount: domain.AnAmountOf(-10)},
		},
		{
			name: "incoming transfer leg",
			transaction: domain.Transaction{
				Type:           domain.Deposit,
				Amount:         domain.AnAmountOf(10),
				TransferID:     "xfer-1",
				CounterpartyID: "acc-1",
			},
			wantDeposit: true,
			wantXfer:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDeposit, tt.transaction.IsDeposit())
			assert.Equal(t, tt.wantXfer, tt.transaction.IsTransfer())
		})
	}
}

func TestTransaction_JSONOmitsEmptyTransferFields(t *testing.T) {
	txn := domain.Transaction{
		TransactionID: "txn-1",
		Date:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:        domain.AnAmountOf(-15),
		Balance:       domain.AnAmountOf(85),
		Type:          domain.Withdrawal,
	}

	data, err := json.Marshal(txn)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "WITHDRAWAL", fields["type"])
	assert.NotContains(t, fields, "transferID")
	assert.NotContains(t, fields, "counterpartyID")

	var decoded domain.Transaction
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Amount.Equal(txn.Amount))
	assert.True(t, decoded.Balance.Equal(txn.Balance))
}
