package repositories

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrBankNotFound   = errors.New("bank not found")
	ErrLimitNotSet    = errors.New("top-up limit not set")
)
