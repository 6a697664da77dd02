package calendar

import (
	"fintrack/internal/core"
)

// SynthesizedIDPrefix marks events derived from transactions. Derived ids
// are deterministic, so running the synthesis twice yields identical output
// and nothing ever needs to be written back.
const SynthesizedIDPrefix = "event-"

// SynthesizeEvents derives one calendar event per transaction. Income
// transactions become income events, everything else becomes an expense
// event. A recurring transaction shows up as a monthly event; recorded
// transactions are always rendered as completed.
func SynthesizeEvents(txs []core.Transaction) []Event {
	events := make([]Event, 0, len(txs))
	for _, t := range txs {
		typ := EventExpense
		if t.Type == core.Income {
			typ = EventIncome
		}
		rec := Once
		if t.IsRecurring {
			rec = Monthly
		}
		events = append(events, Event{
			ID:          SynthesizedIDPrefix + t.ID,
			Title:       t.Description,
			Date:        t.Date,
			Type:        typ,
			Amount:      t.Amount,
			Description: t.Notes,
			Recurrence:  rec,
			CategoryID:  t.CategoryID,
			AccountID:   t.AccountID,
			Completed:   true,
		})
	}
	return events
}

// EventsForMonth keeps events dated in the same month and year as ref.
func EventsForMonth(events []Event, ref core.Date) []Event {
	var out []Event
	for _, e := range events {
		if e.Date.SameMonth(ref) {
			out = append(out, e)
		}
	}
	return out
}

// EventsForDay keeps events dated on the same calendar day as day.
func EventsForDay(events []Event, day core.Date) []Event {
	var out []Event
	for _, e := range events {
		if e.Date.SameDay(day) {
			out = append(out, e)
		}
	}
	return out
}

// AddEvent returns a new collection with the event appended.
func AddEvent(events []Event, e Event) []Event {
	out := make([]Event, 0, len(events)+1)
	out = append(out, events...)
	return append(out, e)
}

// UpdateEvent replaces the event with a matching id. Unknown ids leave the
// collection unchanged.
func UpdateEvent(events []Event, updated Event) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		if e.ID == updated.ID {
			out[i] = updated
		} else {
			out[i] = e
		}
	}
	return out
}

// RemoveEvent returns a new collection without the event of the given id.
func RemoveEvent(events []Event, id string) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}
