// Package ledger implements the balance and limit-enforcement core. A
// client's balance is always derived by summing its transaction log; a
// top-up is approved when the rolling 30-day total plus the new amount stays
// within the configured limit, and is recorded either way.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"paydesk/internal/models"
	"paydesk/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type service struct {
	store Store
}

// NewService creates the ledger service.
func NewService(store Store) Service {
	if store == nil {
		panic("store is required")
	}
	return &service{store: store}
}

func (s *service) CurrentBalance(ctx context.Context, clientID uint) (Balance, error) {
	client, err := s.client(ctx, clientID)
	if err != nil {
		return Balance{}, err
	}

	txs, err := s.store.TransactionsByClient(ctx, clientID, nil, nil)
	if err != nil {
		return Balance{}, fmt.Errorf("failed to get transactions: %w", err)
	}

	return Balance{
		ClientID: client.ID,
		Name:     client.Name + " " + client.Surname,
		Amount:   sumAmounts(txs),
	}, nil
}

// BalanceHistory returns the running-sum trajectory of the client's balance,
// ordered by date ascending, optionally restricted to an inclusive [from, to]
// window. When a window is applied the running sum starts from zero at the
// first in-window transaction rather than from the true balance at the window
// start; callers relying on filtered histories see relative movement, not
// absolute balance.
func (s *service) BalanceHistory(ctx context.Context, clientID uint, from, to *time.Time) ([]BalancePoint, error) {
	if _, err := s.client(ctx, clientID); err != nil {
		return nil, err
	}

	txs, err := s.store.TransactionsByClient(ctx, clientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	history := make([]BalancePoint, 0, len(txs))
	running := decimal.Zero
	for _, tx := range txs {
		running = running.Add(tx.Amount)
		history = append(history, BalancePoint{Date: tx.Date, Balance: running})
	}
	return history, nil
}

// MonthlyTotal returns the signed sum of the client's transactions within the
// trailing 30-day window. Withdrawals count with their negative sign; the
// window is not restricted to top-ups.
func (s *service) MonthlyTotal(ctx context.Context, clientID uint) (decimal.Decimal, error) {
	since := time.Now().Add(-TopUpWindow)
	txs, err := s.store.TransactionsByClientSince(ctx, clientID, since)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get transactions: %w", err)
	}
	return sumAmounts(txs), nil
}

func (s *service) EvaluateTopUp(ctx context.Context, clientID uint, amount decimal.Decimal) (TopUpDecision, error) {
	limit, err := s.store.ActiveLimit(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrLimitNotSet) {
			limit = decimal.Zero
		} else {
			return TopUpDecision{}, fmt.Errorf("failed to get limit: %w", err)
		}
	}

	monthlyTotal, err := s.MonthlyTotal(ctx, clientID)
	if err != nil {
		return TopUpDecision{}, err
	}

	return TopUpDecision{
		Approved:     monthlyTotal.Add(amount).LessThanOrEqual(limit),
		MonthlyTotal: monthlyTotal,
	}, nil
}

// RecordTopUp appends a top-up transaction carrying the limit decision.
// A declined top-up is still recorded, with Approved false. The read of the
// rolling total and the write of the new row are not serialized against
// concurrent recordings.
func (s *service) RecordTopUp(ctx context.Context, clientID, bankID uint, amount decimal.Decimal) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if _, err := s.client(ctx, clientID); err != nil {
		return nil, err
	}
	if _, err := s.bank(ctx, bankID); err != nil {
		return nil, err
	}

	decision, err := s.EvaluateTopUp(ctx, clientID, amount)
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		ClientID:  clientID,
		BankID:    bankID,
		Date:      time.Now(),
		Amount:    amount,
		Approved:  decision.Approved,
		Reference: uuid.NewString(),
	}
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record top-up: %w", err)
	}
	return tx, nil
}

// RecordWithdrawal appends a withdrawal as a negated amount. Unlike top-ups a
// withdrawal is a hard stop: nothing is recorded when the balance is short,
// and no limit check applies.
func (s *service) RecordWithdrawal(ctx context.Context, clientID, bankID uint, amount decimal.Decimal) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if _, err := s.client(ctx, clientID); err != nil {
		return nil, err
	}

	txs, err := s.store.TransactionsByClient(ctx, clientID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	if sumAmounts(txs).LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	tx := &models.Transaction{
		ClientID:  clientID,
		BankID:    bankID,
		Date:      time.Now(),
		Amount:    amount.Neg(),
		Approved:  true,
		Reference: uuid.NewString(),
	}
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record withdrawal: %w", err)
	}
	return tx, nil
}

func (s *service) client(ctx context.Context, id uint) (*models.Client, error) {
	client, err := s.store.ClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

func (s *service) bank(ctx context.Context, id uint) (*models.Bank, error) {
	bank, err := s.store.BankByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrBankNotFound) {
			return nil, ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}
	return bank, nil
}

func sumAmounts(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}
