// Package controller provides output adapters for displaying fix results.
package controller

import (
	m "github.com/mouse-blink/junitmig/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModePreview StartMode = iota
	ModeApply
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	title string
	files int
	diff  bool
}

// WithPreviewMode reports intended changes without writing.
func WithPreviewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePreview
	}
}

// WithApplyMode reports changes as written.
func WithApplyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeApply
	}
}

// WithTitle sets the banner shown when the run starts.
func WithTitle(title string) StartOption {
	return func(c *StartConfig) {
		c.title = title
	}
}

// WithFileCount sets the number of files the run will process.
func WithFileCount(n int) StartOption {
	return func(c *StartConfig) {
		c.files = n
	}
}

// WithDiff prints the unified diff of every changed file.
func WithDiff(enabled bool) StartOption {
	return func(c *StartConfig) {
		c.diff = enabled
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for reporting a run.
// Implementations can use different output methods (simple text, styled, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayFileResult(result m.FileResult)
	DisplayMissing(path m.Path)
	DisplayFailure(path m.Path, err error)
	DisplaySummary(summary m.Summary) error
}

func modeLabel(mode StartMode) string {
	if mode == ModeApply {
		return "apply"
	}

	return "preview"
}

func resultStatus(result m.FileResult, mode StartMode) string {
	switch {
	case result.Error != "":
		return "failed"
	case !result.Changed():
		return "no changes"
	case result.Written:
		return "written"
	case mode == ModeApply:
		return "not written"
	default:
		return "would change"
	}
}
