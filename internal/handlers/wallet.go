package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"paydesk/internal/services/client"
	"paydesk/internal/services/ledger"
	"paydesk/internal/utils/response"
	"paydesk/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	ledger  ledger.Service
	clients client.Service
}

func NewWalletHandler(ledgerService ledger.Service, clients client.Service) *WalletHandler {
	return &WalletHandler{
		ledger:  ledgerService,
		clients: clients,
	}
}

func (h *WalletHandler) GetBalance(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Query("userId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "userId is required")
	}

	balance, err := h.ledger.CurrentBalance(c.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, ledger.ErrClientNotFound) {
			return response.NotFound(c, "Client not found")
		}
		return response.ServerError(c, "Failed to get balance")
	}

	return response.Success(c, fiber.Map{
		"userId":  balance.ClientID,
		"name":    balance.Name,
		"balance": balance.Display(),
	})
}

// TopUp records a top-up either way: a declined one is stored with approved
// false, not rejected.
func (h *WalletHandler) TopUp(c *fiber.Ctx) error {
	var input struct {
		UserID uint            `json:"userId" validate:"required"`
		BankID uint            `json:"bankId" validate:"required"`
		Amount decimal.Decimal `json:"amount" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	tx, err := h.ledger.RecordTopUp(c.Context(), input.UserID, input.BankID, input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must be a positive number")
		case errors.Is(err, ledger.ErrClientNotFound):
			return response.NotFound(c, "Client not found")
		case errors.Is(err, ledger.ErrBankNotFound):
			return response.NotFound(c, "Bank not found")
		default:
			return response.ServerError(c, "Failed to record top-up")
		}
	}

	return response.Created(c, fiber.Map{
		"message":     "Transaction created.",
		"transaction": tx,
	})
}

func (h *WalletHandler) Withdraw(c *fiber.Ctx) error {
	var input struct {
		UserID uint            `json:"userId" validate:"required"`
		BankID uint            `json:"bankId" validate:"required"`
		Amount decimal.Decimal `json:"amount" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	tx, err := h.ledger.RecordWithdrawal(c.Context(), input.UserID, input.BankID, input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must be a positive number")
		case errors.Is(err, ledger.ErrInsufficientFunds):
			return response.BadRequest(c, "Insufficient funds for withdrawal")
		case errors.Is(err, ledger.ErrClientNotFound):
			return response.NotFound(c, "Client not found")
		default:
			return response.ServerError(c, "Failed to record withdrawal")
		}
	}

	return response.Success(c, fiber.Map{
		"message":     "Withdrawal successful",
		"transaction": tx,
	})
}

func (h *WalletHandler) MonthlyTransactions(c *fiber.Ctx) error {
	var input struct {
		UserID uint `json:"userId" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	total, err := h.ledger.MonthlyTotal(c.Context(), input.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to get monthly total")
	}
	return response.Success(c, fiber.Map{"total": total})
}

// BalanceHistory returns running-balance points for the client named by the
// fio query ("Surname Name MiddleName"), optionally windowed by startDate and
// endDate.
func (h *WalletHandler) BalanceHistory(c *fiber.Ctx) error {
	fio := strings.TrimSpace(c.Query("fio"))
	if fio == "" {
		return response.BadRequest(c, "fio is required")
	}
	parts := strings.Fields(fio)
	if len(parts) != 3 {
		return response.BadRequest(c, "fio must be: Surname Name MiddleName")
	}
	surname, name, middleName := parts[0], parts[1], parts[2]

	from, err := parseDateQuery(c.Query("startDate"))
	if err != nil {
		return response.BadRequest(c, "Invalid startDate")
	}
	to, err := parseDateQuery(c.Query("endDate"))
	if err != nil {
		return response.BadRequest(c, "Invalid endDate")
	}

	clientID, err := h.clients.IDByName(c.Context(), name, surname, middleName)
	if err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return response.NotFound(c, "Client not found")
		}
		return response.ServerError(c, "Failed to look up client")
	}

	history, err := h.ledger.BalanceHistory(c.Context(), clientID, from, to)
	if err != nil {
		return response.ServerError(c, "Failed to get balance history")
	}
	return response.Success(c, fiber.Map{"transactions": history})
}

func parseDateQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("unrecognized date format")
}
