// Package report computes summaries over a finance snapshot.
//
// All functions are pure: they never fail, never touch storage, and an empty
// input yields an empty or zero result.
package report

import (
	"fintrack/internal/core"
)

// UnknownCategoryName labels totals whose category no longer exists.
const UnknownCategoryName = "Unknown"

// UnknownCategoryColor is the fallback color for such totals.
const UnknownCategoryColor = "#888888"

// CategoryTotal is an amount aggregated by category.
type CategoryTotal struct {
	ID    string
	Name  string
	Value float64
	Color string
}

// MonthFlow is the income/expense volume of one month.
type MonthFlow struct {
	Year     int
	Month    int // 1-12
	Income   float64
	Expenses float64
}

// BudgetStatus compares spending against a category budget.
type BudgetStatus struct {
	Category core.Category
	Spent    float64
}

// TotalsByCategory sums the amounts of transactions of the given type,
// grouped by category in first-occurrence order. A category id that is
// missing from the catalog resolves to the Unknown placeholder rather
// than being dropped.
func TotalsByCategory(txs []core.Transaction, cats []core.Category, typ core.CategoryType) []CategoryTotal {
	var order []string
	sums := make(map[string]float64)
	for _, t := range txs {
		if t.Type != typ {
			continue
		}
		if _, seen := sums[t.CategoryID]; !seen {
			order = append(order, t.CategoryID)
		}
		sums[t.CategoryID] += t.Amount
	}

	totals := make([]CategoryTotal, 0, len(order))
	for _, id := range order {
		total := CategoryTotal{
			ID:    id,
			Name:  UnknownCategoryName,
			Value: sums[id],
			Color: UnknownCategoryColor,
		}
		for _, c := range cats {
			if c.ID == id {
				total.Name = c.Name
				total.Color = c.Color
				break
			}
		}
		totals = append(totals, total)
	}
	return totals
}

// TransactionsInRange keeps transactions dated within [start, end], both
// bounds inclusive, at day granularity.
func TransactionsInRange(txs []core.Transaction, start, end core.Date) []core.Transaction {
	var out []core.Transaction
	for _, t := range txs {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TotalIncome sums income transaction amounts.
func TotalIncome(txs []core.Transaction) float64 {
	return totalOfType(txs, core.Income)
}

// TotalExpenses sums expense transaction amounts.
func TotalExpenses(txs []core.Transaction) float64 {
	return totalOfType(txs, core.Expense)
}

func totalOfType(txs []core.Transaction, typ core.CategoryType) float64 {
	var sum float64
	for _, t := range txs {
		if t.Type == typ {
			sum += t.Amount
		}
	}
	return sum
}

// TotalBalance is the signed sum of all account balances. Credit accounts
// already carry negative balances, so no sign flip happens here.
func TotalBalance(accounts []core.Account) float64 {
	var sum float64
	for _, a := range accounts {
		sum += a.Balance
	}
	return sum
}

// MonthlyFlow returns the income and expense volume for each month of
// the given year, January through December.
func MonthlyFlow(txs []core.Transaction, year int) []MonthFlow {
	flows := make([]MonthFlow, 12)
	for i := range flows {
		flows[i] = MonthFlow{Year: year, Month: i + 1}
	}
	for _, t := range txs {
		if t.Date.Year() != year {
			continue
		}
		f := &flows[t.Date.Month()-1]
		switch t.Type {
		case core.Income:
			f.Income += t.Amount
		case core.Expense:
			f.Expenses += t.Amount
		}
	}
	return flows
}

// BudgetUsage reports spending against every expense category that has a
// budget set, in catalog order. Categories without spending still appear
// with zero spent.
func BudgetUsage(txs []core.Transaction, cats []core.Category) []BudgetStatus {
	var out []BudgetStatus
	for _, c := range cats {
		if c.Type != core.Expense || c.Budget <= 0 {
			continue
		}
		status := BudgetStatus{Category: c}
		for _, t := range txs {
			if t.Type == core.Expense && t.CategoryID == c.ID {
				status.Spent += t.Amount
			}
		}
		out = append(out, status)
	}
	return out
}
