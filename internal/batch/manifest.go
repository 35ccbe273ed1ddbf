package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame     int        `json:"frame"`
	Image     string     `json:"image"`
	Position  [3]float32 `json:"position"`
	Direction [3]float32 `json:"direction"`
	Moved     bool       `json:"moved"`
	Error     string     `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing every frame of a run.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Frame:     r.Index,
			Image:     r.Path,
			Position:  r.Position,
			Direction: r.Direction,
			Moved:     r.Moved,
			Error:     r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) ([]ManifestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read manifest: %w", err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("batch: parse manifest: %w", err)
	}
	return entries, nil
}
