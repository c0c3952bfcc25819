package ledger

import "errors"

// Service errors
var (
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrClientNotFound    = errors.New("client not found")
	ErrBankNotFound      = errors.New("bank not found")
)
