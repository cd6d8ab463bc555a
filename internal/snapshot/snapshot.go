// Package snapshot assembles per-indicator fetch results into the published
// dashboard document and persists it atomically.
package snapshot

import (
	"time"

	"github.com/solonmacro/solonmacro.github.io/internal/indicator"
)

const (
	// SchemaVersion identifies the snapshot document layout.
	SchemaVersion = "1"

	// Producer identifies the writer of the snapshot.
	Producer = "solon-updater/1.0"

	// TimestampLayout is UTC ISO-8601 with seconds and a Z suffix.
	TimestampLayout = "2006-01-02T15:04:05Z"
)

// Result is the published outcome for one indicator: its configuration
// echo, the fetched value (null when unobtainable), the classification,
// and any error text in notes.
type Result struct {
	Key       string           `json:"key"`
	Label     string           `json:"label"`
	Source    string           `json:"source"`
	Timestamp string           `json:"timestamp"`
	Value     *float64         `json:"value"`
	Unit      string           `json:"unit"`
	Signal    indicator.Signal `json:"signal"`
	Notes     string           `json:"notes"`
}

// Snapshot is the complete document for one run. Indicator order follows
// configuration order.
type Snapshot struct {
	Project    string   `json:"project"`
	Mode       string   `json:"mode"`
	Timestamp  string   `json:"timestamp"`
	Indicators []Result `json:"indicators"`
	Meta       Meta     `json:"meta"`
}

// Meta carries schema and producer identity.
type Meta struct {
	SchemaVersion string `json:"schema_version"`
	GeneratedBy   string `json:"generated_by"`
}

// FormatTimestamp renders t in the snapshot timestamp layout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
