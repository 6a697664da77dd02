// Package calendar projects finance data onto a calendar: it derives events
// from transactions, expands recurring events over a date window and offers
// pure helpers over event collections.
package calendar

import (
	"errors"
	"strings"

	"fintrack/internal/core"
)

const (
	EventIncome  EventType = "income"
	EventExpense EventType = "expense"
	EventInvoice EventType = "invoice"
	EventOther   EventType = "other"
)

const (
	Once    Recurrence = "once"
	Weekly  Recurrence = "weekly"
	Monthly Recurrence = "monthly"
	Yearly  Recurrence = "yearly"
)

type (
	EventType  string
	Recurrence string

	// Event is a single calendar entry. Events synthesized from
	// transactions and freestanding user events share this shape.
	Event struct {
		ID          string     `json:"id"`
		Title       string     `json:"title"`
		Date        core.Date  `json:"date"`
		Type        EventType  `json:"type"`
		Amount      float64    `json:"amount"`
		Description string     `json:"description,omitempty"`
		Recurrence  Recurrence `json:"recurrence,omitempty"`
		CategoryID  string     `json:"categoryId,omitempty"`
		AccountID   string     `json:"accountId,omitempty"`
		Completed   bool       `json:"completed"`
	}
)

var ErrEmptyTitle = errors.New("empty title")

func (t EventType) IsValid() bool {
	switch t {
	case EventIncome, EventExpense, EventInvoice, EventOther:
		return true
	default:
		return false
	}
}

func (r Recurrence) IsValid() bool {
	switch r {
	case Once, Weekly, Monthly, Yearly:
		return true
	default:
		return false
	}
}

// Normalized maps an absent recurrence to Once. Anything else, including
// unrecognized values, passes through untouched.
func (r Recurrence) Normalized() Recurrence {
	if r == "" {
		return Once
	}
	return r
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return core.ErrEmptyID
	}
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if !e.Type.IsValid() {
		return core.ErrInvalidType
	}
	if e.Amount < 0 {
		return core.ErrInvalidAmount
	}
	if !e.Recurrence.Normalized().IsValid() {
		return core.ErrInvalidType
	}
	return nil
}

// EventColor returns the display color for an event type.
func EventColor(t EventType) string {
	switch t {
	case EventIncome:
		return "#10b981"
	case EventExpense:
		return "#f43f5e"
	case EventInvoice:
		return "#8b5cf6"
	case EventOther:
		return "#8E9196"
	default:
		return "#64748b"
	}
}
