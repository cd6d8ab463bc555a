package snapshot

import (
	"context"
	"time"

	"github.com/solonmacro/solonmacro.github.io/internal/dashboard"
	"github.com/solonmacro/solonmacro.github.io/internal/indicator"
	"github.com/solonmacro/solonmacro.github.io/pkg/logger"
)

// Fetcher retrieves the most recent observation of one external series.
type Fetcher interface {
	FetchLatest(ctx context.Context, seriesID string) (value *float64, observationDate string, err error)
}

// Builder runs the per-indicator pipeline (fetch, classify) and assembles
// the Snapshot. Indicators are processed one at a time, in declared order.
type Builder struct {
	fetcher Fetcher
	logger  *logger.Logger
	now     func() time.Time
}

// NewBuilder creates a Builder.
func NewBuilder(f Fetcher, log *logger.Logger) *Builder {
	return &Builder{
		fetcher: f,
		logger:  log,
		now:     time.Now,
	}
}

// Build fetches and classifies every enabled indicator and returns the
// assembled Snapshot. A failure on one indicator is recorded in its notes
// with signal unknown and never prevents the others from being included.
func (b *Builder) Build(ctx context.Context, mode string, cfg *dashboard.Config) *Snapshot {
	generatedAt := FormatTimestamp(b.now())

	snap := &Snapshot{
		Project:   cfg.Project.Name,
		Mode:      mode,
		Timestamp: generatedAt,
		Meta: Meta{
			SchemaVersion: SchemaVersion,
			GeneratedBy:   Producer,
		},
	}

	for _, ind := range cfg.Indicators {
		if !ind.IsEnabled() {
			b.logger.WithField("indicator", ind.Key).Debug("Indicator disabled, skipping")
			continue
		}

		res := Result{
			Key:       ind.Key,
			Label:     ind.Label,
			Source:    ind.Source,
			Timestamp: generatedAt,
			Unit:      ind.Unit,
			Notes:     ind.Notes,
		}

		value, date, err := b.fetcher.FetchLatest(ctx, ind.SeriesID)
		if err != nil {
			res.Notes = appendNote(ind.Notes, err.Error())
			b.logger.WithError(err).WithField("indicator", ind.Key).Warn("Indicator fetch failed")
		} else {
			res.Value = value
			if date != "" {
				res.Timestamp = date
			}
		}

		res.Signal = indicator.Classify(res.Value, ind.Thresholds)

		// Progress line per indicator
		if res.Value != nil {
			b.logger.Infof("%s: %v %s -> %s (%s)",
				ind.Label, *res.Value, ind.Unit, res.Signal, cfg.StatusLabel(res.Signal))
		} else {
			b.logger.Infof("%s: no value -> %s (%s)",
				ind.Label, res.Signal, cfg.StatusLabel(res.Signal))
		}

		snap.Indicators = append(snap.Indicators, res)
	}

	return snap
}

// appendNote joins the static config note and a runtime error text.
func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "; " + note
}
