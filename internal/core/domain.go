package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	Credit     AccountType = "credit"
	Investment AccountType = "investment"
	Wallet     AccountType = "wallet"
)

const (
	Income  CategoryType = "income"
	Expense CategoryType = "expense"
)

const (
	Visa            CardBrand = "visa"
	Mastercard      CardBrand = "mastercard"
	Elo             CardBrand = "elo"
	AmericanExpress CardBrand = "american-express"
	OtherBrand      CardBrand = "other"
)

type (
	AccountType  string
	CategoryType string
	CardBrand    string

	// Account is a money holder. Balance is reconciled manually and is not
	// derived from transaction history.
	Account struct {
		ID      string      `json:"id"`
		Name    string      `json:"name"`
		Type    AccountType `json:"type"`
		Balance float64     `json:"balance"`
		Color   string      `json:"color,omitempty"`
	}

	// Category labels transactions. Budget is meaningful only for expense
	// categories and zero means no budget is set.
	Category struct {
		ID     string       `json:"id"`
		Name   string       `json:"name"`
		Type   CategoryType `json:"type"`
		Color  string       `json:"color"`
		Icon   string       `json:"icon,omitempty"`
		Budget float64      `json:"budget,omitempty"`
	}

	// Transaction is a dated movement of money. Amount is always
	// non-negative; the direction is carried by Type.
	Transaction struct {
		ID            string       `json:"id"`
		Date          Date         `json:"date"`
		AccountID     string       `json:"accountId"`
		CategoryID    string       `json:"categoryId"`
		Description   string       `json:"description"`
		Amount        float64      `json:"amount"`
		Type          CategoryType `json:"type"`
		IsRecurring   bool         `json:"isRecurring,omitempty"`
		IsFixed       bool         `json:"isFixed,omitempty"`
		Notes         string       `json:"notes,omitempty"`
		AttachmentURL string       `json:"attachmentUrl,omitempty"`
	}

	// Goal is a savings target. Progress is CurrentAmount / TargetAmount,
	// computed at display time.
	Goal struct {
		ID            string  `json:"id"`
		Name          string  `json:"name"`
		TargetAmount  float64 `json:"targetAmount"`
		CurrentAmount float64 `json:"currentAmount"`
		Deadline      Date    `json:"deadline"`
		Color         string  `json:"color"`
	}

	// CreditCard tracks a card statement. ClosingDate and DueDate are
	// days of the month.
	CreditCard struct {
		ID          string    `json:"id"`
		BankName    string    `json:"bankName"`
		CardBrand   CardBrand `json:"cardBrand"`
		ClosingDate int       `json:"closingDate"`
		DueDate     int       `json:"dueDate"`
		Limit       float64   `json:"limit"`
		CurrentBill float64   `json:"currentBill"`
		Color       string    `json:"color,omitempty"`
	}

	// FinanceData is the whole persisted snapshot.
	FinanceData struct {
		Accounts     []Account     `json:"accounts"`
		Categories   []Category    `json:"categories"`
		Transactions []Transaction `json:"transactions"`
		Goals        []Goal        `json:"goals"`
		CreditCards  []CreditCard  `json:"creditCards"`
		LastUpdated  time.Time     `json:"lastUpdated"`
	}
)

var (
	ErrEmptyID          = errors.New("empty id")
	ErrEmptyName        = errors.New("empty name")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidType      = errors.New("invalid type")
	ErrInvalidDay       = errors.New("invalid day of month")
	ErrNegativeBudget   = errors.New("budget cannot be negative")
	ErrNegativeLimit    = errors.New("limit cannot be negative")
)

func (t AccountType) IsValid() bool {
	switch t {
	case Checking, Savings, Credit, Investment, Wallet:
		return true
	default:
		return false
	}
}

func (t CategoryType) IsValid() bool {
	switch t {
	case Income, Expense:
		return true
	default:
		return false
	}
}

func (b CardBrand) IsValid() bool {
	switch b {
	case Visa, Mastercard, Elo, AmericanExpress, OtherBrand:
		return true
	default:
		return false
	}
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if !a.Type.IsValid() {
		return ErrInvalidType
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if !c.Type.IsValid() {
		return ErrInvalidType
	}
	if c.Budget < 0 {
		return ErrNegativeBudget
	}
	return nil
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if t.Amount < 0 {
		return ErrInvalidAmount
	}
	if !t.Type.IsValid() {
		return ErrInvalidType
	}
	return nil
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if g.TargetAmount <= 0 {
		return ErrInvalidAmount
	}
	if g.CurrentAmount < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (c CreditCard) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(c.BankName) == "" {
		return ErrEmptyName
	}
	if !c.CardBrand.IsValid() {
		return ErrInvalidType
	}
	if c.ClosingDate < 1 || c.ClosingDate > 31 {
		return ErrInvalidDay
	}
	if c.DueDate < 1 || c.DueDate > 31 {
		return ErrInvalidDay
	}
	if c.Limit < 0 {
		return ErrNegativeLimit
	}
	return nil
}

// AccountByID looks up an account in the snapshot.
func (d FinanceData) AccountByID(id string) (Account, bool) {
	for _, a := range d.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// CategoryByID looks up a category in the snapshot.
func (d FinanceData) CategoryByID(id string) (Category, bool) {
	for _, c := range d.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
