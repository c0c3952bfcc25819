package models

import "time"

// Client is a wallet holder. The name/surname/middle-name triple is used as
// an alternate, non-unique lookup key; records are immutable after
// registration.
type Client struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Name       string `gorm:"not null;index:idx_clients_full_name" json:"name"`
	Surname    string `gorm:"not null;index:idx_clients_full_name" json:"surname"`
	MiddleName string `gorm:"not null;index:idx_clients_full_name" json:"middle_name"`
	Birth      string `gorm:"not null" json:"birth"`
	Phone      string `gorm:"not null" json:"phone"`
	Wallet     string `gorm:"not null" json:"wallet"`

	Transactions []Transaction `gorm:"foreignKey:ClientID" json:"-"`

	CreatedAt time.Time `json:"-"`
}
