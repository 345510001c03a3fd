package domain

import "time"

// BuildInfo records the last successful installer build of a spec directory.
type BuildInfo struct {
	SpecDir   string    `json:"spec_dir,omitzero"`
	Platform  Platform  `json:"platform,omitzero"`
	InputHash string    `json:"input_hash,omitzero"`
	OutputDir string    `json:"output_dir,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
