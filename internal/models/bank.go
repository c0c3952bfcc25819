package models

// Bank is static reference data: a destination for top-ups and withdrawals.
type Bank struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
