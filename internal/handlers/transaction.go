package handlers

import (
	"strings"

	"paydesk/internal/repositories"
	"paydesk/internal/services/client"
	"paydesk/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	ledgerRepo repositories.LedgerRepository
	clients    client.Service
}

func NewTransactionHandler(ledgerRepo repositories.LedgerRepository, clients client.Service) *TransactionHandler {
	return &TransactionHandler{
		ledgerRepo: ledgerRepo,
		clients:    clients,
	}
}

// GetAllTransactions lists every transaction newest first, optionally
// filtered by a full client name ("Surname Name MiddleName",
// case-insensitive).
func (h *TransactionHandler) GetAllTransactions(c *fiber.Ctx) error {
	var filter *repositories.ClientNameFilter
	if clientName := strings.TrimSpace(c.Query("clientName")); clientName != "" {
		parts := strings.Fields(clientName)
		if len(parts) != 3 {
			return response.BadRequest(c, "clientName must be: Surname Name MiddleName")
		}
		filter = &repositories.ClientNameFilter{
			Surname:    parts[0],
			Name:       parts[1],
			MiddleName: parts[2],
		}
	}

	txs, err := h.ledgerRepo.AllTransactions(c.Context(), filter)
	if err != nil {
		return response.ServerError(c, "Failed to fetch transactions")
	}

	views := make([]fiber.Map, 0, len(txs))
	for _, tx := range txs {
		view := fiber.Map{
			"id":       tx.ID,
			"date":     tx.Date,
			"amount":   tx.Amount,
			"approved": tx.Approved,
		}
		if tx.Client != nil {
			view["client"] = fiber.Map{
				"name":        tx.Client.Name,
				"surname":     tx.Client.Surname,
				"middle_name": tx.Client.MiddleName,
				"wallet":      tx.Client.Wallet,
			}
		}
		if tx.Bank != nil {
			view["bank"] = fiber.Map{"name": tx.Bank.Name}
		}
		views = append(views, view)
	}
	return response.Success(c, views)
}

func (h *TransactionHandler) GetTransactionsSummary(c *fiber.Ctx) error {
	summaries, err := h.clients.Summaries(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to build summary")
	}
	return response.Success(c, summaries)
}
