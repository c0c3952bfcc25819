package models

import "github.com/shopspring/decimal"

// TopUpLimit is the configured ceiling on cumulative top-ups within a
// trailing 30-day window. Only the first record is consulted; if none exists
// the effective limit is zero.
type TopUpLimit struct {
	ID     uint            `gorm:"primarykey" json:"id"`
	Amount decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"limit"`
}

func (TopUpLimit) TableName() string { return "limits" }
