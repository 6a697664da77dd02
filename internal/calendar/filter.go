package calendar

import (
	"strings"

	"fintrack/internal/core"
)

// FilterByText keeps events whose title, description, amount or type
// contains the query, case-insensitively. A blank or whitespace-only query
// returns the input collection unchanged.
func FilterByText(events []Event, query string) []Event {
	if strings.TrimSpace(query) == "" {
		return events
	}

	q := strings.ToLower(query)
	var out []Event
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			(e.Description != "" && strings.Contains(strings.ToLower(e.Description), q)) ||
			strings.Contains(core.FormatAmount(e.Amount), q) ||
			strings.Contains(strings.ToLower(string(e.Type)), q) {
			out = append(out, e)
		}
	}
	return out
}
