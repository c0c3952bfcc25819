// Package client handles client registration and lookups.
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"paydesk/internal/models"
	"paydesk/internal/repositories"

	"github.com/shopspring/decimal"
)

var ErrClientNotFound = errors.New("client not found")

// TransactionReader resolves a client's statement. Narrower than the full
// ledger repository so tests can fake it.
type TransactionReader interface {
	RecentTransactions(ctx context.Context, clientID uint) ([]models.Transaction, error)
}

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
	CheckByName(ctx context.Context, name, surname, middleName string) (CheckResult, error)
	IDByName(ctx context.Context, name, surname, middleName string) (uint, error)
	PhoneByID(ctx context.Context, id uint) (string, error)
	Summaries(ctx context.Context) ([]Summary, error)
}

type service struct {
	repo repositories.ClientRepository
	txs  TransactionReader
}

func NewService(repo repositories.ClientRepository, txs TransactionReader) Service {
	if repo == nil {
		panic("client repository is required")
	}
	if txs == nil {
		panic("transaction reader is required")
	}
	return &service{repo: repo, txs: txs}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*models.Client, error) {
	client := &models.Client{
		Name:       strings.TrimSpace(input.Name),
		Surname:    strings.TrimSpace(input.Surname),
		MiddleName: strings.TrimSpace(input.MiddleName),
		Birth:      strings.TrimSpace(input.Birth),
		Phone:      strings.TrimSpace(input.Phone),
		Wallet:     strings.TrimSpace(input.Wallet),
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to register client: %w", err)
	}
	return client, nil
}

func (s *service) List(ctx context.Context) ([]models.Client, error) {
	return s.repo.List(ctx)
}

// CheckByName resolves a client by the exact name triple and, when present,
// attaches its statement newest first. Absence yields Exists false with a nil
// error.
func (s *service) CheckByName(ctx context.Context, name, surname, middleName string) (CheckResult, error) {
	found, err := s.repo.ByName(ctx, name, surname, middleName)
	if err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return CheckResult{Exists: false}, nil
		}
		return CheckResult{}, fmt.Errorf("failed to look up client: %w", err)
	}

	txs, err := s.txs.RecentTransactions(ctx, found.ID)
	if err != nil {
		return CheckResult{}, fmt.Errorf("failed to get transactions: %w", err)
	}

	views := make([]TransactionView, 0, len(txs))
	for _, tx := range txs {
		view := TransactionView{
			ID:       tx.ID,
			Date:     tx.Date,
			Amount:   tx.Amount,
			Approved: tx.Approved,
		}
		if tx.Bank != nil {
			view.BankName = tx.Bank.Name
		}
		views = append(views, view)
	}

	return CheckResult{Exists: true, Client: found, Transactions: views}, nil
}

func (s *service) IDByName(ctx context.Context, name, surname, middleName string) (uint, error) {
	found, err := s.repo.ByName(ctx, name, surname, middleName)
	if err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return 0, ErrClientNotFound
		}
		return 0, fmt.Errorf("failed to look up client: %w", err)
	}
	return found.ID, nil
}

func (s *service) PhoneByID(ctx context.Context, id uint) (string, error) {
	found, err := s.repo.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return "", ErrClientNotFound
		}
		return "", fmt.Errorf("failed to get client: %w", err)
	}
	return found.Phone, nil
}

// Summaries aggregates lifetime income (positive amounts) and expense
// (absolute value of negative amounts) per client.
func (s *service) Summaries(ctx context.Context) ([]Summary, error) {
	clients, err := s.repo.ListWithTransactions(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(clients))
	for _, c := range clients {
		income, expense := decimal.Zero, decimal.Zero
		for _, tx := range c.Transactions {
			if tx.Amount.IsPositive() {
				income = income.Add(tx.Amount)
			} else if tx.Amount.IsNegative() {
				expense = expense.Add(tx.Amount.Abs())
			}
		}
		summaries = append(summaries, Summary{
			UserID:   c.ID,
			UserName: displayName(c),
			Income:   income,
			Expense:  expense,
		})
	}
	return summaries, nil
}

// displayName renders "Surname Name M." with the middle name abbreviated.
func displayName(c models.Client) string {
	initial := ""
	if r := []rune(c.MiddleName); len(r) > 0 {
		initial = string(r[0]) + "."
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", c.Surname, c.Name, initial))
}
