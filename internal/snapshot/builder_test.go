package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solonmacro/solonmacro.github.io/internal/dashboard"
	"github.com/solonmacro/solonmacro.github.io/internal/external/fred"
	"github.com/solonmacro/solonmacro.github.io/internal/indicator"
	"github.com/solonmacro/solonmacro.github.io/pkg/config"
	"github.com/solonmacro/solonmacro.github.io/pkg/logger"
)

// fakeFetcher serves canned results per series ID and records call order.
type fakeFetcher struct {
	results map[string]fakeResult
	calls   []string
}

type fakeResult struct {
	value *float64
	date  string
	err   error
}

func (f *fakeFetcher) FetchLatest(ctx context.Context, seriesID string) (*float64, string, error) {
	f.calls = append(f.calls, seriesID)
	r, ok := f.results[seriesID]
	if !ok {
		return nil, "", &fred.Error{Kind: fred.KindPermanent, Message: "unknown series"}
	}
	return r.value, r.date, r.err
}

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
}

func fv(v float64) *float64 { return &v }

func enabled(b bool) *bool { return &b }

func testDashboard() *dashboard.Config {
	return &dashboard.Config{
		Project: dashboard.Project{Name: "SolonInsight"},
		Output:  dashboard.Output{DataDir: "data", LatestFile: "latest.json"},
		StatusLevels: map[string]dashboard.StatusLevel{
			"green":   {Label: "Stable"},
			"unknown": {Label: "No data"},
		},
		Indicators: []dashboard.Indicator{
			{
				Key: "unrate", SeriesID: "UNRATE", Label: "Unemployment Rate",
				Source: "FRED", Unit: "percent",
				Thresholds: indicator.Thresholds{GreenMax: fv(4.0), YellowMax: fv(6.0)},
			},
			{
				Key: "cpi", SeriesID: "CPIAUCSL", Label: "CPI",
				Source: "FRED", Unit: "index",
				Thresholds: indicator.Thresholds{GreenMax: fv(300.0)},
				Notes:      "static note",
			},
			{
				Key: "skipme", SeriesID: "SKIP", Label: "Disabled",
				Source: "FRED", Enabled: enabled(false),
			},
		},
	}
}

func TestBuild(t *testing.T) {
	fetcher := &fakeFetcher{
		results: map[string]fakeResult{
			"UNRATE":   {value: fv(3.7), date: "2024-05-01"},
			"CPIAUCSL": {err: &fred.Error{Kind: fred.KindConfiguration, Message: "credential not configured"}},
		},
	}

	builder := NewBuilder(fetcher, testLogger())
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	builder.now = func() time.Time { return now }

	snap := builder.Build(context.Background(), "daily", testDashboard())

	require.NotNil(t, snap)
	assert.Equal(t, "SolonInsight", snap.Project)
	assert.Equal(t, "daily", snap.Mode)
	assert.Equal(t, "2024-06-01T12:00:00Z", snap.Timestamp)
	assert.Equal(t, SchemaVersion, snap.Meta.SchemaVersion)
	assert.Equal(t, Producer, snap.Meta.GeneratedBy)

	// Disabled indicator is neither fetched nor included.
	assert.Equal(t, []string{"UNRATE", "CPIAUCSL"}, fetcher.calls, "declared order preserved")
	require.Len(t, snap.Indicators, 2)

	unrate := snap.Indicators[0]
	assert.Equal(t, "unrate", unrate.Key)
	require.NotNil(t, unrate.Value)
	assert.Equal(t, 3.7, *unrate.Value)
	assert.Equal(t, indicator.SignalGreen, unrate.Signal)
	assert.Equal(t, "2024-05-01", unrate.Timestamp, "observation date wins over generation time")
	assert.Empty(t, unrate.Notes)

	cpi := snap.Indicators[1]
	assert.Equal(t, "cpi", cpi.Key)
	assert.Nil(t, cpi.Value)
	assert.Equal(t, indicator.SignalUnknown, cpi.Signal)
	assert.Equal(t, "2024-06-01T12:00:00Z", cpi.Timestamp, "generation time when no observation date")
	assert.Equal(t, "static note; credential not configured", cpi.Notes)
}

func TestBuild_MissingObservationDateFallsBackToGenerationTime(t *testing.T) {
	fetcher := &fakeFetcher{
		results: map[string]fakeResult{
			"UNRATE": {value: fv(3.7)},
		},
	}

	builder := NewBuilder(fetcher, testLogger())
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	builder.now = func() time.Time { return now }

	dash := testDashboard()
	dash.Indicators = dash.Indicators[:1]

	snap := builder.Build(context.Background(), "weekly", dash)

	require.Len(t, snap.Indicators, 1)
	assert.Equal(t, "2024-06-01T12:00:00Z", snap.Indicators[0].Timestamp)
}

func TestBuild_ErrorIsolation(t *testing.T) {
	// Every indicator fails differently; all must still be present.
	fetcher := &fakeFetcher{
		results: map[string]fakeResult{
			"UNRATE":   {err: &fred.Error{Kind: fred.KindTransient, Message: "server error (HTTP 503) (after 4 attempts)"}},
			"CPIAUCSL": {err: &fred.Error{Kind: fred.KindDataAbsent, Message: "no observations returned for CPIAUCSL"}},
		},
	}

	builder := NewBuilder(fetcher, testLogger())
	snap := builder.Build(context.Background(), "monthly", testDashboard())

	require.Len(t, snap.Indicators, 2)
	for _, res := range snap.Indicators {
		assert.Nil(t, res.Value)
		assert.Equal(t, indicator.SignalUnknown, res.Signal)
		assert.NotEmpty(t, res.Notes)
	}
}
