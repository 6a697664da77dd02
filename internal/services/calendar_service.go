package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/cache"
	"fintrack/internal/calendar"
	"fintrack/internal/core"
	"fintrack/internal/store"
)

// CalendarService assembles calendar views from the two snapshot slots:
// events synthesized from transactions and freestanding user events.
type CalendarService struct {
	gateway *store.Gateway
	views   *cache.TTLCache[[]calendar.Event]
}

func NewCalendarService(gateway *store.Gateway) *CalendarService {
	return &CalendarService{
		gateway: gateway,
		// A handful of months is all a user pages through in a session.
		views: cache.New[[]calendar.Event](12, 5*time.Minute),
	}
}

// MonthView returns every event to display for the month of ref: base
// events dated in-month plus all recurring occurrences expanded over the
// month window.
func (s *CalendarService) MonthView(ctx context.Context, ref core.Date) ([]calendar.Event, error) {
	key := fmt.Sprintf("%04d-%02d", ref.Year(), ref.Month())
	if view, ok := s.views.Get(key); ok {
		return view, nil
	}

	var (
		data   core.FinanceData
		stored []calendar.Event
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data, err = s.gateway.LoadData(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stored, err = s.gateway.LoadEvents(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load calendar sources: %w", err)
	}

	all := append(calendar.SynthesizeEvents(data.Transactions), stored...)
	view := calendar.MonthEvents(all, ref)

	s.views.Set(key, view)
	return view, nil
}

// Search filters the month view by free text.
func (s *CalendarService) Search(ctx context.Context, ref core.Date, query string) ([]calendar.Event, error) {
	view, err := s.MonthView(ctx, ref)
	if err != nil {
		return nil, err
	}
	return calendar.FilterByText(view, query), nil
}

// SaveEvent adds or updates a freestanding event. Events derived from
// transactions are recomputed on every load and cannot be stored here.
func (s *CalendarService) SaveEvent(ctx context.Context, e calendar.Event) (calendar.Event, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if err := e.Validate(); err != nil {
		return calendar.Event{}, fmt.Errorf("validate event: %w", err)
	}

	events, err := s.gateway.LoadEvents(ctx)
	if err != nil {
		return calendar.Event{}, err
	}

	exists := false
	for _, stored := range events {
		if stored.ID == e.ID {
			exists = true
			break
		}
	}
	if exists {
		events = calendar.UpdateEvent(events, e)
	} else {
		events = calendar.AddEvent(events, e)
	}

	if err := s.gateway.SaveEvents(ctx, events); err != nil {
		return calendar.Event{}, err
	}
	s.views.Clear()

	slog.InfoContext(ctx, "Calendar event saved",
		"id", e.ID,
		"title", e.Title,
		"date", e.Date.String(),
		"recurrence", e.Recurrence.Normalized())
	return e, nil
}

// DeleteEvent removes a freestanding event by id.
func (s *CalendarService) DeleteEvent(ctx context.Context, id string) error {
	events, err := s.gateway.LoadEvents(ctx)
	if err != nil {
		return err
	}
	remaining := calendar.RemoveEvent(events, id)
	if len(remaining) == len(events) {
		return fmt.Errorf("event %s not found", id)
	}
	if err := s.gateway.SaveEvents(ctx, remaining); err != nil {
		return err
	}
	s.views.Clear()
	return nil
}
