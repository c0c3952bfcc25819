package repositories

import (
	"context"
	"fmt"
	"time"

	"paydesk/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClientNameFilter matches a client by the full name triple,
// case-insensitively.
type ClientNameFilter struct {
	Surname    string
	Name       string
	MiddleName string
}

// LedgerRepository is the persistent transaction log plus the limit setting.
// The log is append-only: there is no update or delete path for transactions.
type LedgerRepository interface {
	TransactionsByClient(ctx context.Context, clientID uint, from, to *time.Time) ([]models.Transaction, error)
	TransactionsByClientSince(ctx context.Context, clientID uint, since time.Time) ([]models.Transaction, error)
	RecentTransactions(ctx context.Context, clientID uint) ([]models.Transaction, error)
	AllTransactions(ctx context.Context, filter *ClientNameFilter) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	ActiveLimit(ctx context.Context) (decimal.Decimal, error)
	ClientByID(ctx context.Context, id uint) (*models.Client, error)
	BankByID(ctx context.Context, id uint) (*models.Bank, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

// TransactionsByClient returns the client's transactions ordered by date
// ascending, optionally restricted to an inclusive [from, to] window.
func (r *ledgerRepository) TransactionsByClient(ctx context.Context, clientID uint, from, to *time.Time) ([]models.Transaction, error) {
	q := r.db.WithContext(ctx).Where("client_id = ?", clientID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}

	var txs []models.Transaction
	if err := q.Order("date ASC").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return txs, nil
}

func (r *ledgerRepository) TransactionsByClientSince(ctx context.Context, clientID uint, since time.Time) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND date >= ?", clientID, since).
		Order("date ASC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return txs, nil
}

// RecentTransactions returns the client's transactions newest first with the
// originating bank preloaded, for statement-style views.
func (r *ledgerRepository) RecentTransactions(ctx context.Context, clientID uint) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Bank").
		Where("client_id = ?", clientID).
		Order("date DESC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return txs, nil
}

func (r *ledgerRepository) AllTransactions(ctx context.Context, filter *ClientNameFilter) ([]models.Transaction, error) {
	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Bank").
		Order("date DESC")
	if filter != nil {
		q = q.Joins("JOIN clients ON clients.id = transactions.client_id").
			Where("LOWER(clients.surname) = LOWER(?) AND LOWER(clients.name) = LOWER(?) AND LOWER(clients.middle_name) = LOWER(?)",
				filter.Surname, filter.Name, filter.MiddleName)
	}

	var txs []models.Transaction
	if err := q.Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return txs, nil
}

func (r *ledgerRepository) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ActiveLimit returns the configured top-up ceiling. ErrLimitNotSet is a
// valid outcome, not a store failure.
func (r *ledgerRepository) ActiveLimit(ctx context.Context) (decimal.Decimal, error) {
	var limit models.TopUpLimit
	if err := r.db.WithContext(ctx).First(&limit).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return decimal.Zero, ErrLimitNotSet
		}
		return decimal.Zero, fmt.Errorf("failed to get limit: %w", err)
	}
	return limit.Amount, nil
}

func (r *ledgerRepository) ClientByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

func (r *ledgerRepository) BankByID(ctx context.Context, id uint) (*models.Bank, error) {
	var bank models.Bank
	if err := r.db.WithContext(ctx).First(&bank, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}
	return &bank, nil
}
