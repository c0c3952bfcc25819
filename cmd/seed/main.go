// Seeds the bank directory and the initial top-up limit.
package main

import (
	"errors"
	"log"

	"paydesk/internal/config"
	"paydesk/internal/models"
	"paydesk/internal/repositories"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var defaultBanks = []string{
	"Alfa-Bank",
	"Sberbank",
	"Tinkoff",
	"VTB",
}

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("⚠️ Failed to close PostgreSQL connection: %v", err)
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	for _, name := range defaultBanks {
		var existing models.Bank
		missing, err := rowMissing(repositories.DB.Where("name = ?", name).First(&existing).Error)
		if err != nil {
			log.Fatal("Failed to check bank:", err)
		}
		if !missing {
			continue
		}
		if err := repositories.DB.Create(&models.Bank{Name: name}).Error; err != nil {
			log.Fatal("Failed to seed bank:", err)
		}
	}

	limitAmount, err := decimal.NewFromString(config.GetEnv("TOPUP_LIMIT", "100000"))
	if err != nil {
		log.Fatal("Invalid TOPUP_LIMIT:", err)
	}

	var existingLimit models.TopUpLimit
	missing, err := rowMissing(repositories.DB.First(&existingLimit).Error)
	if err != nil {
		log.Fatal("Failed to check limit:", err)
	}
	if missing {
		if err := repositories.DB.Create(&models.TopUpLimit{Amount: limitAmount}).Error; err != nil {
			log.Fatal("Failed to seed limit:", err)
		}
	}

	log.Println("✅ Banks and top-up limit seeded successfully!")
}

// rowMissing reports whether a lookup error means the row is absent. A store
// failure is returned as-is so the seed stops instead of inserting blindly.
func rowMissing(err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	return false, err
}
