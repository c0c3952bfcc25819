package repositories

import (
	"context"
	"fmt"
	"strings"

	"paydesk/internal/models"

	"gorm.io/gorm"
)

// ClientRepository provides client lookups. Clients are immutable after
// registration, so there is no update path.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	List(ctx context.Context) ([]models.Client, error)
	ListWithTransactions(ctx context.Context) ([]models.Client, error)
	ByID(ctx context.Context, id uint) (*models.Client, error)
	ByName(ctx context.Context, name, surname, middleName string) (*models.Client, error)
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *clientRepository) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (r *clientRepository) ListWithTransactions(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Preload("Transactions").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (r *clientRepository) ByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

// ByName finds the first client matching the trimmed name triple.
func (r *clientRepository) ByName(ctx context.Context, name, surname, middleName string) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).
		Where("name = ? AND surname = ? AND middle_name = ?",
			strings.TrimSpace(name), strings.TrimSpace(surname), strings.TrimSpace(middleName)).
		First(&client).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}
