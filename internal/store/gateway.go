package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/calendar"
	"fintrack/internal/core"
)

// ErrInvalidSnapshot rejects imported data that is missing one of the
// required top-level collections.
var ErrInvalidSnapshot = errors.New("invalid snapshot: accounts, categories and transactions are required")

// Gateway owns the two persistence slots: the finance snapshot and the
// freestanding calendar events. Events synthesized from transactions are
// never persisted here, only recomputed on load.
type Gateway struct {
	kv  KV
	now func() time.Time
}

func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv, now: time.Now}
}

// LoadData returns the stored finance snapshot. A missing slot is seeded
// with the default dataset, which is also written back so the next load
// sees it. A corrupt slot falls back to the default dataset without
// touching what is stored.
func (g *Gateway) LoadData(ctx context.Context) (core.FinanceData, error) {
	raw, ok, err := g.kv.Get(ctx, FinanceKey)
	if err != nil {
		return core.FinanceData{}, fmt.Errorf("load finance snapshot: %w", err)
	}
	if !ok {
		data := DefaultData(g.now())
		if err := g.SaveData(ctx, data); err != nil {
			return core.FinanceData{}, fmt.Errorf("seed finance snapshot: %w", err)
		}
		return data, nil
	}

	var data core.FinanceData
	if err := json.Unmarshal(raw, &data); err != nil {
		slog.WarnContext(ctx, "Stored finance snapshot is corrupt, using defaults", "error", err)
		return DefaultData(g.now()), nil
	}
	return data, nil
}

// SaveData stores the snapshot, stamping lastUpdated.
func (g *Gateway) SaveData(ctx context.Context, data core.FinanceData) error {
	data.LastUpdated = g.now().UTC()
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode finance snapshot: %w", err)
	}
	if err := g.kv.Put(ctx, FinanceKey, raw); err != nil {
		return fmt.Errorf("save finance snapshot: %w", err)
	}
	return nil
}

// ExportJSON returns the stored finance snapshot verbatim, or "{}" when
// nothing has been stored yet.
func (g *Gateway) ExportJSON(ctx context.Context) (string, error) {
	raw, ok, err := g.kv.Get(ctx, FinanceKey)
	if err != nil {
		return "", fmt.Errorf("export finance snapshot: %w", err)
	}
	if !ok {
		return "{}", nil
	}
	return string(raw), nil
}

// ExportFilename names a backup file for the given moment.
func (g *Gateway) ExportFilename(now time.Time) string {
	return "financa-pessoal-backup-" + now.Format(core.DateLayout) + ".json"
}

// ImportJSON validates and stores imported snapshot text. The text must
// carry non-null accounts, categories and transactions collections; on
// acceptance it replaces the stored snapshot wholesale, on rejection the
// stored snapshot is left untouched.
func (g *Gateway) ImportJSON(ctx context.Context, text string) error {
	var probe struct {
		Accounts     *[]core.Account     `json:"accounts"`
		Categories   *[]core.Category    `json:"categories"`
		Transactions *[]core.Transaction `json:"transactions"`
	}
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return fmt.Errorf("parse imported snapshot: %w", err)
	}
	if probe.Accounts == nil || probe.Categories == nil || probe.Transactions == nil {
		return ErrInvalidSnapshot
	}
	if err := g.kv.Put(ctx, FinanceKey, []byte(text)); err != nil {
		return fmt.Errorf("store imported snapshot: %w", err)
	}
	return nil
}

// LoadEvents returns the freestanding calendar events. A missing slot
// yields no events; a corrupt slot is ignored so the caller still gets
// the events synthesized from transactions.
func (g *Gateway) LoadEvents(ctx context.Context) ([]calendar.Event, error) {
	raw, ok, err := g.kv.Get(ctx, EventsKey)
	if err != nil {
		return nil, fmt.Errorf("load calendar snapshot: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var events []calendar.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		slog.WarnContext(ctx, "Stored calendar snapshot is corrupt, ignoring it", "error", err)
		return nil, nil
	}
	return events, nil
}

// SaveEvents stores the freestanding calendar events.
func (g *Gateway) SaveEvents(ctx context.Context, events []calendar.Event) error {
	if events == nil {
		events = []calendar.Event{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode calendar snapshot: %w", err)
	}
	if err := g.kv.Put(ctx, EventsKey, raw); err != nil {
		return fmt.Errorf("save calendar snapshot: %w", err)
	}
	return nil
}
