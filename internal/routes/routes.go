// Package routes defines the API routing configuration. It wires
// repositories, services and handlers together into one authoritative route
// set.
package routes

import (
	"paydesk/internal/handlers"
	"paydesk/internal/repositories"
	"paydesk/internal/services/client"
	"paydesk/internal/services/ledger"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	ledgerRepo := repositories.NewLedgerRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	bankRepo := repositories.NewBankRepository(db)

	ledgerService := ledger.NewService(ledgerRepo)
	clientService := client.NewService(clientRepo, ledgerRepo)

	clientHandler := handlers.NewClientHandler(clientService)
	walletHandler := handlers.NewWalletHandler(ledgerService, clientService)
	transactionHandler := handlers.NewTransactionHandler(ledgerRepo, clientService)
	bankHandler := handlers.NewBankHandler(bankRepo, ledgerRepo, repositories.CacheService)

	api := app.Group("/api")

	// Clients
	api.Post("/client", clientHandler.CreateClient)
	api.Get("/clients", clientHandler.GetClients)
	api.Post("/check-client", clientHandler.CheckClient)
	api.Get("/client-id", clientHandler.GetClientID)
	api.Get("/client-number", clientHandler.GetClientNumber)

	// Wallet
	api.Get("/balance", walletHandler.GetBalance)
	api.Post("/top-up", walletHandler.TopUp)
	api.Post("/withdraw", walletHandler.Withdraw)
	api.Post("/monthly-transactions", walletHandler.MonthlyTransactions)
	api.Get("/balance-history", walletHandler.BalanceHistory)

	// Transactions
	api.Get("/all-transactions", transactionHandler.GetAllTransactions)
	api.Get("/transactions-summary", transactionHandler.GetTransactionsSummary)

	// Reference data
	api.Get("/banks", bankHandler.GetBanks)
	api.Get("/limits", bankHandler.GetLimit)

	app.Get("/health", handlers.HealthCheck)
}
