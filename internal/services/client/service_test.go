package client

import (
	"context"
	"strings"
	"testing"

	"paydesk/internal/models"
	"paydesk/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientRepo struct {
	clients []models.Client
	nextID  uint
}

func (f *fakeClientRepo) Create(_ context.Context, c *models.Client) error {
	f.nextID++
	c.ID = f.nextID
	f.clients = append(f.clients, *c)
	return nil
}

func (f *fakeClientRepo) List(_ context.Context) ([]models.Client, error) {
	return f.clients, nil
}

func (f *fakeClientRepo) ListWithTransactions(_ context.Context) ([]models.Client, error) {
	return f.clients, nil
}

func (f *fakeClientRepo) ByID(_ context.Context, id uint) (*models.Client, error) {
	for i := range f.clients {
		if f.clients[i].ID == id {
			return &f.clients[i], nil
		}
	}
	return nil, repositories.ErrClientNotFound
}

func (f *fakeClientRepo) ByName(_ context.Context, name, surname, middleName string) (*models.Client, error) {
	for i := range f.clients {
		c := &f.clients[i]
		if c.Name == strings.TrimSpace(name) &&
			c.Surname == strings.TrimSpace(surname) &&
			c.MiddleName == strings.TrimSpace(middleName) {
			return c, nil
		}
	}
	return nil, repositories.ErrClientNotFound
}

type fakeTxReader struct {
	txs []models.Transaction
}

func (f *fakeTxReader) RecentTransactions(_ context.Context, clientID uint) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range f.txs {
		if tx.ClientID == clientID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func seededRepo() *fakeClientRepo {
	return &fakeClientRepo{
		clients: []models.Client{
			{ID: 1, Name: "Ivan", Surname: "Petrov", MiddleName: "Sergeevich", Phone: "+79990001122", Wallet: "wallet-1"},
		},
		nextID: 1,
	}
}

func TestRegister(t *testing.T) {
	repo := &fakeClientRepo{}
	s := NewService(repo, &fakeTxReader{})

	created, err := s.Register(context.Background(), RegisterInput{
		Name:       "  Anna ",
		Surname:    "Ivanova",
		MiddleName: "Petrovna",
		Birth:      "1990-04-12",
		Phone:      "+79991112233",
		Wallet:     "wallet-9",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Anna", created.Name)
}

func TestCheckByName(t *testing.T) {
	t.Run("existing client with statement", func(t *testing.T) {
		repo := seededRepo()
		txs := &fakeTxReader{txs: []models.Transaction{
			{ID: 1, ClientID: 1, Amount: decimal.NewFromInt(100), Approved: true,
				Bank: &models.Bank{Name: "Alfa-Bank"}},
			{ID: 2, ClientID: 1, Amount: decimal.NewFromInt(-20), Approved: true,
				Bank: &models.Bank{Name: "VTB"}},
		}}

		result, err := NewService(repo, txs).CheckByName(context.Background(), "Ivan", "Petrov", "Sergeevich")
		require.NoError(t, err)
		assert.True(t, result.Exists)
		require.NotNil(t, result.Client)
		require.Len(t, result.Transactions, 2)
		assert.Equal(t, "Alfa-Bank", result.Transactions[0].BankName)
		assert.Equal(t, "VTB", result.Transactions[1].BankName)
	})

	t.Run("absent client is not an error", func(t *testing.T) {
		result, err := NewService(seededRepo(), &fakeTxReader{}).CheckByName(context.Background(), "Nobody", "Here", "X")
		require.NoError(t, err)
		assert.False(t, result.Exists)
		assert.Nil(t, result.Client)
	})
}

func TestIDByName(t *testing.T) {
	s := NewService(seededRepo(), &fakeTxReader{})

	id, err := s.IDByName(context.Background(), "Ivan", "Petrov", "Sergeevich")
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	_, err = s.IDByName(context.Background(), "Nobody", "Here", "X")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestPhoneByID(t *testing.T) {
	s := NewService(seededRepo(), &fakeTxReader{})

	phone, err := s.PhoneByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "+79990001122", phone)

	_, err = s.PhoneByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestSummaries(t *testing.T) {
	repo := &fakeClientRepo{
		clients: []models.Client{
			{
				ID: 1, Name: "Ivan", Surname: "Petrov", MiddleName: "Sergeevich",
				Transactions: []models.Transaction{
					{Amount: decimal.NewFromInt(100)},
					{Amount: decimal.NewFromInt(50)},
					{Amount: decimal.NewFromInt(-30)},
				},
			},
			{ID: 2, Name: "Anna", Surname: "Ivanova", MiddleName: "Petrovna"},
		},
	}

	summaries, err := NewService(repo, &fakeTxReader{}).Summaries(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Petrov Ivan S.", summaries[0].UserName)
	assert.True(t, summaries[0].Income.Equal(decimal.NewFromInt(150)))
	assert.True(t, summaries[0].Expense.Equal(decimal.NewFromInt(30)))

	assert.Equal(t, "Ivanova Anna P.", summaries[1].UserName)
	assert.True(t, summaries[1].Income.IsZero())
	assert.True(t, summaries[1].Expense.IsZero())
}
