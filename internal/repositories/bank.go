package repositories

import (
	"context"
	"fmt"

	"paydesk/internal/models"

	"gorm.io/gorm"
)

type BankRepository interface {
	Create(ctx context.Context, bank *models.Bank) error
	List(ctx context.Context) ([]models.Bank, error)
}

type bankRepository struct {
	db *gorm.DB
}

func NewBankRepository(db *gorm.DB) BankRepository {
	return &bankRepository{db: db}
}

func (r *bankRepository) Create(ctx context.Context, bank *models.Bank) error {
	if err := r.db.WithContext(ctx).Create(bank).Error; err != nil {
		return fmt.Errorf("failed to create bank: %w", err)
	}
	return nil
}

func (r *bankRepository) List(ctx context.Context) ([]models.Bank, error) {
	var banks []models.Bank
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&banks).Error; err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	return banks, nil
}
