package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one signed ledger entry: positive amounts are top-ups,
// negative amounts are withdrawals. Entries are append-only; amount and date
// never change after creation. A client's entries ordered by date fully
// determine its balance at any point in time.
type Transaction struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	ClientID  uint            `gorm:"not null;index" json:"clientId"`
	Client    *Client         `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	BankID    uint            `gorm:"not null" json:"bankId"`
	Bank      *Bank           `gorm:"foreignKey:BankID" json:"bank,omitempty"`
	Date      time.Time       `gorm:"not null;index" json:"date"`
	Amount    decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	Approved  bool            `gorm:"not null" json:"approved"`
	Reference string          `gorm:"size:36" json:"reference"`
	CreatedAt time.Time       `json:"-"`
}
