package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteAtomic serializes the snapshot as indented JSON and publishes it at
// path so readers never observe a partial file: the bytes go to a sibling
// temp file first and are moved into place with a rename, which is atomic
// within one filesystem volume. On failure the temp file is removed and
// the previous content at path, if any, is left untouched.
//
// The destination directory must already exist. Concurrent runs against
// the same path would race on the temp name; the updater is not meant to
// be invoked concurrently.
func WriteAtomic(snap *Snapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	data = append(data, '\n')

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write snapshot temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("publish snapshot: %w", err)
	}

	return nil
}
