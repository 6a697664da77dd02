package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"fintrack/internal/calendar"
	"fintrack/internal/config"
	"fintrack/internal/core"
	"fintrack/internal/services"
	"fintrack/internal/store"
)

func main() {
	// Load .env file for local development (ignore errors elsewhere)
	_ = godotenv.Load()

	var (
		monthFlag  = flag.String("month", "", "month to report, formatted YYYY-MM (default: current month)")
		searchFlag = flag.String("search", "", "filter calendar events by free text")
		exportFlag = flag.String("export", "", "write the finance snapshot to the given file and exit")
		importFlag = flag.String("import", "", "replace the finance snapshot with the given file and exit")
	)
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	kv, cleanup, err := store.Open(store.Backend(cfg.Backend), cfg.DBPath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err, "backend", cfg.Backend)
		os.Exit(1)
	}
	if cleanup != nil {
		defer cleanup()
	}

	ctx := context.Background()
	gateway := store.NewGateway(kv)

	switch {
	case *exportFlag != "":
		if err := runExport(ctx, gateway, *exportFlag); err != nil {
			logger.Error("Export failed", "error", err, "file", *exportFlag)
			os.Exit(1)
		}
	case *importFlag != "":
		if err := runImport(ctx, gateway, *importFlag); err != nil {
			logger.Error("Import failed", "error", err, "file", *importFlag)
			os.Exit(1)
		}
	default:
		ref, err := parseMonth(*monthFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := runReport(ctx, gateway, ref, *searchFlag); err != nil {
			logger.Error("Report failed", "error", err)
			os.Exit(1)
		}
	}
}

func parseMonth(s string) (core.Date, error) {
	if s == "" {
		return core.DateOf(time.Now()), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return core.Date{}, fmt.Errorf("invalid -month %q: want YYYY-MM", s)
	}
	return core.DateOf(t), nil
}

func runExport(ctx context.Context, gateway *store.Gateway, path string) error {
	// Touch the slot first so a fresh install exports the seed data.
	if _, err := gateway.LoadData(ctx); err != nil {
		return err
	}
	text, err := gateway.ExportJSON(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("Exported snapshot to %s (suggested name: %s)\n", path, gateway.ExportFilename(time.Now()))
	return nil
}

func runImport(ctx context.Context, gateway *store.Gateway, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}
	if err := gateway.ImportJSON(ctx, string(raw)); err != nil {
		return err
	}
	fmt.Printf("Imported snapshot from %s\n", path)
	return nil
}

func runReport(ctx context.Context, gateway *store.Gateway, ref core.Date, search string) error {
	finance := services.NewFinanceService(gateway)
	cal := services.NewCalendarService(gateway)

	summary, err := finance.MonthSummary(ctx, ref)
	if err != nil {
		return err
	}

	var events []calendar.Event
	if search != "" {
		events, err = cal.Search(ctx, ref, search)
	} else {
		events, err = cal.MonthView(ctx, ref)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Summary for %04d-%02d\n", ref.Year(), ref.Month())
	fmt.Printf("  Total balance: %s\n", core.FormatAmount(summary.Balance))
	fmt.Printf("  Income:        %s\n", core.FormatAmount(summary.Income))
	fmt.Printf("  Expenses:      %s\n", core.FormatAmount(summary.Expenses))

	if len(summary.ByCategory) > 0 {
		fmt.Println("  Expenses by category:")
		for _, ct := range summary.ByCategory {
			fmt.Printf("    %-20s %s\n", ct.Name, core.FormatAmount(ct.Value))
		}
	}

	fmt.Printf("Calendar (%d events)\n", len(events))
	for _, e := range events {
		status := " "
		if e.Completed {
			status = "x"
		}
		fmt.Printf("  [%s] %s  %-10s %-28s %s\n",
			status, e.Date.String(), e.Type, e.Title, core.FormatAmount(e.Amount))
	}
	return nil
}
