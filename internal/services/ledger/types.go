package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopUpWindow is the trailing period a top-up limit applies to. It is a
// rolling window ending at evaluation time, not a calendar month.
const TopUpWindow = 30 * 24 * time.Hour

// Balance is a client's derived balance: the sum of every signed amount in
// its transaction log.
type Balance struct {
	ClientID uint
	Name     string
	Amount   decimal.Decimal
}

// Display formats the balance to two decimal places.
func (b Balance) Display() string {
	return b.Amount.StringFixed(2)
}

// BalancePoint is one entry of a balance trajectory: the cumulative sum of
// amounts up to and including the transaction at Date.
type BalancePoint struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// TopUpDecision is the outcome of evaluating a proposed top-up against the
// rolling monthly limit.
type TopUpDecision struct {
	Approved     bool
	MonthlyTotal decimal.Decimal
}
