package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/calendar"
	"fintrack/internal/core"
)

func testGateway() (*Gateway, *MemoryKV) {
	kv := NewMemoryKV()
	g := NewGateway(kv)
	g.now = func() time.Time {
		return time.Date(2023, 7, 30, 12, 0, 0, 0, time.UTC)
	}
	return g, kv
}

func TestLoadDataSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	g, kv := testGateway()

	data, err := g.LoadData(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Accounts, 4)
	assert.Len(t, data.Categories, 8)
	assert.Len(t, data.Transactions, 8)
	assert.Len(t, data.Goals, 3)
	assert.NotNil(t, data.CreditCards)

	// The seed must have been written back.
	_, ok, err := kv.Get(ctx, FinanceKey)
	require.NoError(t, err)
	assert.True(t, ok)

	again, err := g.LoadData(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.Accounts, again.Accounts)
}

func TestLoadDataCorruptFallsBack(t *testing.T) {
	ctx := context.Background()
	g, kv := testGateway()
	require.NoError(t, kv.Put(ctx, FinanceKey, []byte("{not json")))

	data, err := g.LoadData(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Accounts, 4)

	// The corrupt bytes stay in place; load never writes on this path.
	raw, ok, err := kv.Get(ctx, FinanceKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "{not json", string(raw))
}

func TestSaveDataStampsLastUpdated(t *testing.T) {
	ctx := context.Background()
	g, kv := testGateway()

	require.NoError(t, g.SaveData(ctx, core.FinanceData{}))

	raw, ok, err := kv.Get(ctx, FinanceKey)
	require.NoError(t, err)
	require.True(t, ok)

	var stored core.FinanceData
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.True(t, stored.LastUpdated.Equal(time.Date(2023, 7, 30, 12, 0, 0, 0, time.UTC)),
		"lastUpdated = %v", stored.LastUpdated)
}

func TestExportJSON(t *testing.T) {
	ctx := context.Background()
	g, kv := testGateway()

	out, err := g.ExportJSON(ctx)
	require.NoError(t, err)
	assert.Equal(t, "{}", out, "empty slot exports an empty object")

	require.NoError(t, kv.Put(ctx, FinanceKey, []byte(`{"accounts":[]}`)))
	out, err = g.ExportJSON(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"accounts":[]}`, out, "export returns stored bytes verbatim")
}

func TestExportFilename(t *testing.T) {
	g, _ := testGateway()
	now := time.Date(2023, 7, 30, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, "financa-pessoal-backup-2023-07-30.json", g.ExportFilename(now))
}

func TestImportJSONReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	g, kv := testGateway()
	require.NoError(t, kv.Put(ctx, FinanceKey, []byte(`{"accounts":[{"id":"old"}],"categories":[],"transactions":[],"goals":[],"creditCards":[]}`)))

	imported := `{"accounts": [], "categories": [], "transactions": []}`
	require.NoError(t, g.ImportJSON(ctx, imported))

	raw, ok, err := kv.Get(ctx, FinanceKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, imported, string(raw), "import replaces the snapshot wholesale, no merge")
}

func TestImportJSONRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	g, kv := testGateway()
	prior := `{"accounts":[],"categories":[],"transactions":[],"goals":[],"creditCards":[]}`
	require.NoError(t, kv.Put(ctx, FinanceKey, []byte(prior)))

	cases := []struct {
		name string
		text string
	}{
		{"missing collections", `{"foo": 1}`},
		{"null collection", `{"accounts": null, "categories": [], "transactions": []}`},
		{"malformed json", `{"accounts": [`},
		{"empty", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, g.ImportJSON(ctx, tc.text))

			raw, ok, err := kv.Get(ctx, FinanceKey)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, prior, string(raw), "rejected import must leave stored state untouched")
		})
	}
}

func TestEventsRoundTrip(t *testing.T) {
	ctx := context.Background()
	g, _ := testGateway()

	events, err := g.LoadEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events, "missing slot yields no events")

	saved := []calendar.Event{
		{ID: "e1", Title: "Fatura", Date: core.NewDate(2023, 8, 5), Type: calendar.EventInvoice, Amount: 1540.30, Recurrence: calendar.Monthly},
	}
	require.NoError(t, g.SaveEvents(ctx, saved))

	loaded, err := g.LoadEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadEventsCorruptIsIgnored(t *testing.T) {
	ctx := context.Background()
	g, kv := testGateway()
	require.NoError(t, kv.Put(ctx, EventsKey, []byte("[broken")))

	events, err := g.LoadEvents(ctx)
	require.NoError(t, err)
	assert.Nil(t, events)
}

func TestSaveEventsNilBecomesEmptyArray(t *testing.T) {
	ctx := context.Background()
	g, kv := testGateway()
	require.NoError(t, g.SaveEvents(ctx, nil))

	raw, ok, err := kv.Get(ctx, EventsKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(raw))
}

func TestMemoryKVCopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	value := []byte("original")
	require.NoError(t, kv.Put(ctx, "k", value))
	value[0] = 'X'

	got, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "original", string(got))
}
