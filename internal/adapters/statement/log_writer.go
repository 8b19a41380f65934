package statement

import (
	"log/slog"
	"time"

	"github.com/SscSPs/bank_account_kata/internal/core/domain"
	"github.com/SscSPs/bank_account_kata/internal/utils"
)

const dateFormat = time.DateOnly

// LogWriter is a StatementWriter that renders statements to a structured logger,
// one record per balance and one per statement row (date, amount, balance).
type LogWriter struct {
	logger    *slog.Logger
	precision int
}

// NewLogWriter creates a LogWriter. A nil logger means slog.Default().
func NewLogWriter(logger *slog.Logger, precision int) *LogWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogWriter{
		logger:    logger.With(slog.String("component", "statement")),
		precision: precision,
	}
}

var _ domain.StatementWriter = (*LogWriter)(nil)

func (w *LogWriter) PrintBalanceOf(balance domain.Money) {
	w.logger.Info("Balance statement",
		slog.String("balance", utils.FormatWithPrecision(balance, w.precision)))
}

func (w *LogWriter) PrintFullStatementWith(transactions []domain.Transaction) {
	w.logger.Info("Full statement", slog.Int("rows", len(transactions)))
	for i, txn := range transactions {
		attrs := []any{
			slog.Int("row", i+1),
			slog.String("date", txn.Date.Format(dateFormat)),
			slog.String("type", string(txn.Type)),
			slog.String("amount", utils.FormatWithPrecision(txn.Amount, w.precision)),
			slog.String("balance", utils.FormatWithPrecision(txn.Balance, w.precision)),
		}
		if txn.IsTransfer() {
			attrs = append(attrs,
				slog.String("transfer_id", txn.TransferID),
				slog.String("counterparty_id", txn.CounterpartyID))
		}
		w.logger.Info("Statement line", attrs...)
	}
}
