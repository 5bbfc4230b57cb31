// Package progress provides terminal progress reporting for statidx
// builds: the concrete realization of stork's ProgressReporter trait,
// rendered either as a full TUI (interactive terminals) or a plain
// line-oriented stream (pipes, CI, --no-tui).
package progress

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// Stage identifies a phase of an index build (spec §6 "Build pipeline").
type Stage int

const (
	StageScanning Stage = iota
	StageTokenizing
	StageBuilding
	StageAliasing
	StageSerializing
	StageComplete
)

// String returns the human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageScanning:
		return "Scanning"
	case StageTokenizing:
		return "Tokenizing"
	case StageBuilding:
		return "Building"
	case StageAliasing:
		return "Aliasing"
	case StageSerializing:
		return "Serializing"
	case StageComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Icon returns the short stage tag used in plain text output.
func (s Stage) Icon() string {
	switch s {
	case StageScanning:
		return "SCAN"
	case StageTokenizing:
		return "TOKEN"
	case StageBuilding:
		return "BUILD"
	case StageAliasing:
		return "ALIAS"
	case StageSerializing:
		return "WRITE"
	case StageComplete:
		return "DONE"
	default:
		return "???"
	}
}

// Event is a single progress update emitted during a build.
type Event struct {
	Stage       Stage
	Current     int
	Total       int
	CurrentFile string
	Message     string
}

// ErrorEvent reports a per-document failure without aborting the build.
type ErrorEvent struct {
	File   string
	Err    error
	IsWarn bool
}

// StageTimings records how long each stage of a build took.
type StageTimings struct {
	Scan       time.Duration
	Tokenize   time.Duration
	Build      time.Duration
	Alias      time.Duration
	Serialize  time.Duration
}

// CompletionStats summarizes a finished build.
type CompletionStats struct {
	Documents  int
	Containers int
	Duration   time.Duration
	Errors     int
	Warnings   int
	Stages     StageTimings
}

// Reporter is the interface build_index drives a build through — stork's
// ProgressReporter trait, reified as a Go interface so both the plain and
// TUI renderers can implement it interchangeably.
type Reporter interface {
	Start(ctx context.Context) error
	Update(event Event)
	AddError(event ErrorEvent)
	Complete(stats CompletionStats)
	Stop() error
}

// Config configures the reporter a build uses.
type Config struct {
	Output     io.Writer
	ForcePlain bool
	NoColor    bool
}

// ConfigOption mutates a Config under construction.
type ConfigOption func(*Config)

// WithForcePlain forces the plain line-oriented reporter regardless of TTY
// detection.
func WithForcePlain(force bool) ConfigOption {
	return func(c *Config) { c.ForcePlain = force }
}

// WithNoColor disables ANSI styling in the TUI reporter.
func WithNoColor(noColor bool) ConfigOption {
	return func(c *Config) { c.NoColor = noColor }
}

// NewConfig builds a Config writing to output with opts applied.
func NewConfig(output io.Writer, opts ...ConfigOption) Config {
	cfg := Config{Output: output}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// New selects a Reporter appropriate to cfg and the runtime environment: a
// plain reporter for non-TTY output, CI, or ForcePlain, and the TUI
// reporter everywhere else.
func New(cfg Config) Reporter {
	if cfg.ForcePlain || !IsTTY(cfg.Output) || DetectCI() {
		return NewPlainReporter(cfg)
	}

	tui, err := NewTUIReporter(cfg)
	if err != nil {
		return NewPlainReporter(cfg)
	}
	return tui
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DetectCI reports whether common CI environment variables are set.
func DetectCI() bool {
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "TRAVIS"} {
		if _, ok := os.LookupEnv(v); ok {
			return true
		}
	}
	return false
}
