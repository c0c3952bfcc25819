package handlers

import (
	"errors"
	"log"

	"paydesk/internal/repositories"
	"paydesk/internal/repositories/cache"
	"paydesk/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type BankHandler struct {
	banks      repositories.BankRepository
	ledgerRepo repositories.LedgerRepository
	cache      *cache.CacheService
}

func NewBankHandler(banks repositories.BankRepository, ledgerRepo repositories.LedgerRepository, cacheService *cache.CacheService) *BankHandler {
	return &BankHandler{
		banks:      banks,
		ledgerRepo: ledgerRepo,
		cache:      cacheService,
	}
}

// GetBanks serves the bank directory, cache first. Banks are static
// reference data; the cache never holds balances or limits.
func (h *BankHandler) GetBanks(c *fiber.Ctx) error {
	if h.cache != nil {
		if banks, found, err := h.cache.GetBanks(c.Context()); err == nil && found {
			return response.Success(c, banks)
		}
	}

	banks, err := h.banks.List(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to fetch banks")
	}

	if h.cache != nil {
		if err := h.cache.CacheBanks(c.Context(), banks); err != nil {
			log.Printf("failed to cache bank directory: %v", err)
		}
	}
	return response.Success(c, banks)
}

func (h *BankHandler) GetLimit(c *fiber.Ctx) error {
	limit, err := h.ledgerRepo.ActiveLimit(c.Context())
	if err != nil {
		if errors.Is(err, repositories.ErrLimitNotSet) {
			return response.NotFound(c, "Limit is not set")
		}
		return response.ServerError(c, "Failed to get limit")
	}
	return response.Success(c, fiber.Map{"limit": limit})
}
