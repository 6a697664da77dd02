// Package services orchestrates the pure core over the persistence
// gateway: it assigns identifiers, validates input at the edit boundary
// and performs whole-snapshot saves after each mutation.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"fintrack/internal/core"
	"fintrack/internal/report"
	"fintrack/internal/store"
)

// FinanceService manages the finance snapshot: accounts, categories,
// transactions, goals and credit cards.
type FinanceService struct {
	gateway *store.Gateway
}

func NewFinanceService(gateway *store.Gateway) *FinanceService {
	return &FinanceService{gateway: gateway}
}

// MonthSummary is the dashboard view of one month.
type MonthSummary struct {
	Month      core.Date
	Balance    float64
	Income     float64
	Expenses   float64
	ByCategory []report.CategoryTotal
}

// Data returns the current snapshot.
func (s *FinanceService) Data(ctx context.Context) (core.FinanceData, error) {
	return s.gateway.LoadData(ctx)
}

// AddTransaction validates and stores a transaction, assigning an id when
// absent, and returns the stored value.
func (s *FinanceService) AddTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("validate transaction: %w", err)
	}

	data, err := s.gateway.LoadData(ctx)
	if err != nil {
		return core.Transaction{}, err
	}
	data.Transactions = append(data.Transactions, tx)
	if err := s.gateway.SaveData(ctx, data); err != nil {
		return core.Transaction{}, err
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", tx.ID,
		"description", tx.Description,
		"amount", tx.Amount,
		"type", tx.Type)
	return tx, nil
}

// UpdateTransaction replaces the stored transaction with the same id.
func (s *FinanceService) UpdateTransaction(ctx context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("validate transaction: %w", err)
	}

	data, err := s.gateway.LoadData(ctx)
	if err != nil {
		return err
	}
	found := false
	for i, existing := range data.Transactions {
		if existing.ID == tx.ID {
			data.Transactions[i] = tx
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("transaction %s not found", tx.ID)
	}
	return s.gateway.SaveData(ctx, data)
}

// RemoveTransaction deletes the transaction with the given id.
func (s *FinanceService) RemoveTransaction(ctx context.Context, id string) error {
	data, err := s.gateway.LoadData(ctx)
	if err != nil {
		return err
	}
	kept := data.Transactions[:0]
	found := false
	for _, tx := range data.Transactions {
		if tx.ID == id {
			found = true
			continue
		}
		kept = append(kept, tx)
	}
	if !found {
		return fmt.Errorf("transaction %s not found", id)
	}
	data.Transactions = kept
	return s.gateway.SaveData(ctx, data)
}

// AddAccount validates and stores an account.
func (s *FinanceService) AddAccount(ctx context.Context, a core.Account) (core.Account, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if err := a.Validate(); err != nil {
		return core.Account{}, fmt.Errorf("validate account: %w", err)
	}

	data, err := s.gateway.LoadData(ctx)
	if err != nil {
		return core.Account{}, err
	}
	data.Accounts = append(data.Accounts, a)
	if err := s.gateway.SaveData(ctx, data); err != nil {
		return core.Account{}, err
	}
	slog.InfoContext(ctx, "Account saved", "id", a.ID, "name", a.Name, "type", a.Type)
	return a, nil
}

// AddCategory validates and stores a category.
func (s *FinanceService) AddCategory(ctx context.Context, c core.Category) (core.Category, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := c.Validate(); err != nil {
		return core.Category{}, fmt.Errorf("validate category: %w", err)
	}

	data, err := s.gateway.LoadData(ctx)
	if err != nil {
		return core.Category{}, err
	}
	data.Categories = append(data.Categories, c)
	if err := s.gateway.SaveData(ctx, data); err != nil {
		return core.Category{}, err
	}
	slog.InfoContext(ctx, "Category saved", "id", c.ID, "name", c.Name, "type", c.Type)
	return c, nil
}

// AddGoal validates and stores a goal.
func (s *FinanceService) AddGoal(ctx context.Context, g core.Goal) (core.Goal, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if err := g.Validate(); err != nil {
		return core.Goal{}, fmt.Errorf("validate goal: %w", err)
	}

	data, err := s.gateway.LoadData(ctx)
	if err != nil {
		return core.Goal{}, err
	}
	data.Goals = append(data.Goals, g)
	if err := s.gateway.SaveData(ctx, data); err != nil {
		return core.Goal{}, err
	}
	slog.InfoContext(ctx, "Goal saved", "id", g.ID, "name", g.Name)
	return g, nil
}

// AddCreditCard validates and stores a credit card.
func (s *FinanceService) AddCreditCard(ctx context.Context, c core.CreditCard) (core.CreditCard, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := c.Validate(); err != nil {
		return core.CreditCard{}, fmt.Errorf("validate credit card: %w", err)
	}

	data, err := s.gateway.LoadData(ctx)
	if err != nil {
		return core.CreditCard{}, err
	}
	data.CreditCards = append(data.CreditCards, c)
	if err := s.gateway.SaveData(ctx, data); err != nil {
		return core.CreditCard{}, err
	}
	slog.InfoContext(ctx, "Credit card saved", "id", c.ID, "bank", c.BankName, "brand", c.CardBrand)
	return c, nil
}

// MonthSummary aggregates the snapshot for the month of ref.
func (s *FinanceService) MonthSummary(ctx context.Context, ref core.Date) (MonthSummary, error) {
	data, err := s.gateway.LoadData(ctx)
	if err != nil {
		return MonthSummary{}, err
	}

	monthTxs := report.TransactionsInRange(data.Transactions, ref.MonthStart(), ref.MonthEnd())
	return MonthSummary{
		Month:      ref.MonthStart(),
		Balance:    report.TotalBalance(data.Accounts),
		Income:     report.TotalIncome(monthTxs),
		Expenses:   report.TotalExpenses(monthTxs),
		ByCategory: report.TotalsByCategory(monthTxs, data.Categories, core.Expense),
	}, nil
}
