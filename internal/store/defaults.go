package store

import (
	"time"

	"fintrack/internal/core"
)

// DefaultData is the dataset a fresh installation starts with.
func DefaultData(now time.Time) core.FinanceData {
	return core.FinanceData{
		Accounts: []core.Account{
			{ID: "acc1", Name: "Conta Corrente", Type: core.Checking, Balance: 5230.45, Color: "#6366f1"},
			{ID: "acc2", Name: "Poupança", Type: core.Savings, Balance: 12450.82, Color: "#8b5cf6"},
			{ID: "acc3", Name: "Cartão de Crédito", Type: core.Credit, Balance: -1540.30, Color: "#f43f5e"},
			{ID: "acc4", Name: "Carteira", Type: core.Wallet, Balance: 250.00, Color: "#10b981"},
		},
		Categories: []core.Category{
			{ID: "cat1", Name: "Salário", Type: core.Income, Color: "#10b981"},
			{ID: "cat2", Name: "Investimentos", Type: core.Income, Color: "#8b5cf6"},
			{ID: "cat3", Name: "Alimentação", Type: core.Expense, Color: "#f43f5e", Budget: 800},
			{ID: "cat4", Name: "Transporte", Type: core.Expense, Color: "#fb923c", Budget: 400},
			{ID: "cat5", Name: "Moradia", Type: core.Expense, Color: "#6366f1", Budget: 1200},
			{ID: "cat6", Name: "Lazer", Type: core.Expense, Color: "#ec4899", Budget: 500},
			{ID: "cat7", Name: "Saúde", Type: core.Expense, Color: "#14b8a6", Budget: 300},
			{ID: "cat8", Name: "Educação", Type: core.Expense, Color: "#f59e0b", Budget: 700},
		},
		Transactions: []core.Transaction{
			{ID: "t1", Date: core.NewDate(2023, 7, 5), AccountID: "acc1", CategoryID: "cat1", Description: "Salário Julho", Amount: 5000, Type: core.Income},
			{ID: "t2", Date: core.NewDate(2023, 7, 10), AccountID: "acc3", CategoryID: "cat3", Description: "Supermercado", Amount: 350.45, Type: core.Expense},
			{ID: "t3", Date: core.NewDate(2023, 7, 12), AccountID: "acc3", CategoryID: "cat6", Description: "Cinema", Amount: 80.90, Type: core.Expense},
			{ID: "t4", Date: core.NewDate(2023, 7, 15), AccountID: "acc1", CategoryID: "cat5", Description: "Aluguel", Amount: 1200, Type: core.Expense},
			{ID: "t5", Date: core.NewDate(2023, 7, 20), AccountID: "acc1", CategoryID: "cat2", Description: "Dividendos", Amount: 120.50, Type: core.Income},
			{ID: "t6", Date: core.NewDate(2023, 7, 22), AccountID: "acc3", CategoryID: "cat4", Description: "Combustível", Amount: 200.30, Type: core.Expense},
			{ID: "t7", Date: core.NewDate(2023, 7, 25), AccountID: "acc3", CategoryID: "cat7", Description: "Farmácia", Amount: 85.75, Type: core.Expense},
			{ID: "t8", Date: core.NewDate(2023, 7, 27), AccountID: "acc1", CategoryID: "cat8", Description: "Curso Online", Amount: 450, Type: core.Expense},
		},
		Goals: []core.Goal{
			{ID: "g1", Name: "Viagem para a Europa", TargetAmount: 15000, CurrentAmount: 5600, Deadline: core.NewDate(2024, 7, 1), Color: "#6366f1"},
			{ID: "g2", Name: "Comprar um Carro", TargetAmount: 30000, CurrentAmount: 12000, Deadline: core.NewDate(2024, 12, 1), Color: "#8b5cf6"},
			{ID: "g3", Name: "Fundo de Emergência", TargetAmount: 20000, CurrentAmount: 7500, Deadline: core.NewDate(2023, 12, 31), Color: "#10b981"},
		},
		CreditCards: []core.CreditCard{},
		LastUpdated: now.UTC(),
	}
}
