package calendar

import (
	"fintrack/internal/core"
)

// defaultMaxSteps bounds an occurrence walk. At one step per week this
// covers roughly twenty years, far beyond any window a caller displays.
const defaultMaxSteps = 1024

// occurrenceWalker enumerates the candidate dates of a recurring event in
// strictly increasing order, starting at the event's own date. The walk is
// anchored: the cursor advances in whole periods from the anchor, never from
// a window bound, so a rent due on the 15th stays due on the 15th no matter
// where the window starts.
//
// Month-end policy: a monthly or yearly anchor day that does not exist in a
// shorter month is skipped for that period and the walk resumes on the
// anchor day of the next period (day 31 never drifts to day 28).
type occurrenceWalker struct {
	anchor core.Date
	every  Recurrence
	step   int
	max    int
}

func newOccurrenceWalker(anchor core.Date, every Recurrence, max int) *occurrenceWalker {
	if max <= 0 {
		max = defaultMaxSteps
	}
	return &occurrenceWalker{anchor: anchor, every: every.Normalized(), max: max}
}

// next returns the next candidate date. It reports false once the step
// guard is exhausted or the recurrence is not one that repeats; an
// unrecognized recurrence value terminates the walk immediately rather
// than looping.
func (w *occurrenceWalker) next() (core.Date, bool) {
	for w.step < w.max {
		n := w.step
		w.step++

		switch w.every {
		case Weekly:
			return w.anchor.AddDays(7 * n), true
		case Monthly:
			months := w.anchor.Year()*12 + w.anchor.Month() - 1 + n
			year, month := months/12, months%12+1
			if w.anchor.Day() > core.DaysInMonth(year, month) {
				continue
			}
			return core.NewDate(year, month, w.anchor.Day()), true
		case Yearly:
			year := w.anchor.Year() + n
			if w.anchor.Day() > core.DaysInMonth(year, w.anchor.Month()) {
				continue
			}
			return core.NewDate(year, w.anchor.Month(), w.anchor.Day()), true
		default:
			return core.Date{}, false
		}
	}
	return core.Date{}, false
}

// GenerateRecurringEvents expands every recurring event into concrete
// occurrences within [start, end], both bounds inclusive. Each occurrence
// copies the source event with a date-suffixed id, the occurrence date and
// Completed cleared. Occurrences before the window advance the cursor
// without being emitted. Output order is by source event, then by
// increasing date; coinciding occurrences of different sources are all
// kept.
func GenerateRecurringEvents(events []Event, start, end core.Date) []Event {
	var generated []Event
	for _, e := range events {
		if e.Recurrence.Normalized() == Once {
			continue
		}

		w := newOccurrenceWalker(e.Date, e.Recurrence, 0)
		for {
			d, ok := w.next()
			if !ok || d.After(end) {
				break
			}
			if d.Before(start) {
				continue
			}
			occurrence := e
			occurrence.ID = e.ID + "-" + d.String()
			occurrence.Date = d
			occurrence.Completed = false
			generated = append(generated, occurrence)
		}
	}
	return generated
}

// MonthEvents assembles the event list for a displayed month: the union of
// base events dated in that month and every occurrence generated over the
// month window. A recurring base event dated in-month appears twice, once
// as itself and once as its date-suffixed occurrence; the ids never
// collide.
func MonthEvents(events []Event, ref core.Date) []Event {
	out := EventsForMonth(events, ref)
	return append(out, GenerateRecurringEvents(events, ref.MonthStart(), ref.MonthEnd())...)
}
