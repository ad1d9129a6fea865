// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// FileStatus indicates the outcome of converting a single document.
type FileStatus string

const (
	FileConverted FileStatus = "converted"
	FileFailed    FileStatus = "failed"
)

// FileRecord holds the outcome of one document conversion within a run.
type FileRecord struct {
	// DocPath is the path of the source document.
	DocPath string `json:"doc_path" yaml:"doc_path"`

	// RulePath is the path of the written rule file (empty when the
	// conversion failed).
	RulePath string `json:"rule_path,omitempty" yaml:"rule_path,omitempty"`

	// Status is the conversion outcome for this document.
	Status FileStatus `json:"status" yaml:"status"`

	// Error is the failure reason (empty when the conversion succeeded).
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Duration is the wall-clock time spent on this document.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Run records a single invocation of the converter.
type Run struct {
	// ID is a UUID assigned when the run starts.
	ID string `json:"id" yaml:"id"`

	// Command names the entry point that produced the run ("convert" or "batch").
	Command string `json:"command" yaml:"command"`

	// Model is the model identifier used for the run.
	Model string `json:"model" yaml:"model"`

	// StartedAt is the time the run began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// FinishedAt is the time the run completed.
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`

	// Converted counts documents that produced a rule file.
	Converted int `json:"converted" yaml:"converted"`

	// Failed counts documents that did not produce a rule file.
	Failed int `json:"failed" yaml:"failed"`

	// Files lists the per-document outcomes in processing order.
	Files []FileRecord `json:"files,omitempty" yaml:"files,omitempty"`
}
