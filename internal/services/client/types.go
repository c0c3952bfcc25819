package client

import (
	"time"

	"paydesk/internal/models"

	"github.com/shopspring/decimal"
)

// RegisterInput carries the six required registration fields.
type RegisterInput struct {
	Name       string
	Surname    string
	MiddleName string
	Birth      string
	Phone      string
	Wallet     string
}

// TransactionView is a statement line: a transaction with its bank's display
// name resolved.
type TransactionView struct {
	ID       uint            `json:"id"`
	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Approved bool            `json:"approved"`
	BankName string          `json:"bankName"`
}

// CheckResult is the outcome of a lookup by name triple. An absent client is
// a valid result, not an error.
type CheckResult struct {
	Exists       bool
	Client       *models.Client
	Transactions []TransactionView
}

// Summary is a client's lifetime income and expense totals.
type Summary struct {
	UserID   uint            `json:"userId"`
	UserName string          `json:"userName"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
}
