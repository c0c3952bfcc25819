package ledger

import (
	"context"
	"time"

	"paydesk/internal/models"

	"github.com/shopspring/decimal"
)

// Store is the ledger-store capability the core consumes. It is injected so
// the gorm repository and the in-memory test store are interchangeable.
type Store interface {
	TransactionsByClient(ctx context.Context, clientID uint, from, to *time.Time) ([]models.Transaction, error)
	TransactionsByClientSince(ctx context.Context, clientID uint, since time.Time) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	ActiveLimit(ctx context.Context) (decimal.Decimal, error)
	ClientByID(ctx context.Context, id uint) (*models.Client, error)
	BankByID(ctx context.Context, id uint) (*models.Bank, error)
}

// Service derives balances from the transaction log, decides top-up approval
// against the rolling limit, and appends new transactions.
type Service interface {
	// Balance operations, read-only.
	CurrentBalance(ctx context.Context, clientID uint) (Balance, error)
	BalanceHistory(ctx context.Context, clientID uint, from, to *time.Time) ([]BalancePoint, error)
	MonthlyTotal(ctx context.Context, clientID uint) (decimal.Decimal, error)

	// EvaluateTopUp is a pure decision; it never mutates the ledger.
	// RecordTopUp runs it as its approval step; it is exposed so callers
	// can preview a decision without recording anything.
	EvaluateTopUp(ctx context.Context, clientID uint, amount decimal.Decimal) (TopUpDecision, error)

	// Recorders, append-only.
	RecordTopUp(ctx context.Context, clientID, bankID uint, amount decimal.Decimal) (*models.Transaction, error)
	RecordWithdrawal(ctx context.Context, clientID, bankID uint, amount decimal.Decimal) (*models.Transaction, error)
}
