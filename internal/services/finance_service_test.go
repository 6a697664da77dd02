package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

func newFinanceService() *FinanceService {
	return NewFinanceService(store.NewGateway(store.NewMemoryKV()))
}

func TestAddTransactionAssignsID(t *testing.T) {
	ctx := context.Background()
	svc := newFinanceService()

	tx, err := svc.AddTransaction(ctx, core.Transaction{
		Date:        core.NewDate(2023, 8, 1),
		AccountID:   "acc1",
		CategoryID:  "cat3",
		Description: "Padaria",
		Amount:      18.50,
		Type:        core.Expense,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)

	data, err := svc.Data(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Transactions, 9, "seed has 8, one was added")
	assert.Equal(t, tx.ID, data.Transactions[8].ID)
}

func TestAddTransactionRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	svc := newFinanceService()

	_, err := svc.AddTransaction(ctx, core.Transaction{
		Date:        core.NewDate(2023, 8, 1),
		Description: "",
		Amount:      10,
		Type:        core.Expense,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrEmptyDescription)

	// Nothing was persisted.
	data, err := svc.Data(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Transactions, 8)
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()
	svc := newFinanceService()

	updated := core.Transaction{
		ID:          "t2",
		Date:        core.NewDate(2023, 7, 10),
		AccountID:   "acc3",
		CategoryID:  "cat3",
		Description: "Supermercado do mês",
		Amount:      402.10,
		Type:        core.Expense,
	}
	require.NoError(t, svc.UpdateTransaction(ctx, updated))

	data, err := svc.Data(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Supermercado do mês", data.Transactions[1].Description)

	missing := updated
	missing.ID = "nope"
	require.Error(t, svc.UpdateTransaction(ctx, missing))
}

func TestRemoveTransaction(t *testing.T) {
	ctx := context.Background()
	svc := newFinanceService()

	require.NoError(t, svc.RemoveTransaction(ctx, "t3"))
	data, err := svc.Data(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Transactions, 7)
	for _, tx := range data.Transactions {
		assert.NotEqual(t, "t3", tx.ID)
	}

	require.Error(t, svc.RemoveTransaction(ctx, "t3"))
}

func TestAddEntities(t *testing.T) {
	ctx := context.Background()
	svc := newFinanceService()

	account, err := svc.AddAccount(ctx, core.Account{Name: "Reserva", Type: core.Savings, Balance: 1000})
	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)

	category, err := svc.AddCategory(ctx, core.Category{Name: "Pets", Type: core.Expense, Color: "#a3e635", Budget: 150})
	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)

	goal, err := svc.AddGoal(ctx, core.Goal{Name: "Notebook", TargetAmount: 6000, Deadline: core.NewDate(2024, 3, 1), Color: "#38bdf8"})
	require.NoError(t, err)
	assert.NotEmpty(t, goal.ID)

	card, err := svc.AddCreditCard(ctx, core.CreditCard{BankName: "Nubank", CardBrand: core.Mastercard, ClosingDate: 28, DueDate: 5, Limit: 8000})
	require.NoError(t, err)
	assert.NotEmpty(t, card.ID)

	data, err := svc.Data(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Accounts, 5)
	assert.Len(t, data.Categories, 9)
	assert.Len(t, data.Goals, 4)
	assert.Len(t, data.CreditCards, 1)

	_, err = svc.AddCreditCard(ctx, core.CreditCard{BankName: "Nubank", CardBrand: core.Mastercard, ClosingDate: 40, DueDate: 5})
	assert.ErrorIs(t, err, core.ErrInvalidDay)
}

func TestMonthSummary(t *testing.T) {
	ctx := context.Background()
	svc := newFinanceService()

	summary, err := svc.MonthSummary(ctx, core.NewDate(2023, 7, 20))
	require.NoError(t, err)

	assert.InDelta(t, 5000+120.50, summary.Income, 1e-9)
	assert.InDelta(t, 350.45+80.90+1200+200.30+85.75+450, summary.Expenses, 1e-9)
	assert.InDelta(t, 5230.45+12450.82-1540.30+250, summary.Balance, 1e-9)
	assert.Len(t, summary.ByCategory, 6, "six expense categories were touched in july")

	empty, err := svc.MonthSummary(ctx, core.NewDate(2021, 1, 1))
	require.NoError(t, err)
	assert.Zero(t, empty.Income)
	assert.Zero(t, empty.Expenses)
	assert.Empty(t, empty.ByCategory)
}
