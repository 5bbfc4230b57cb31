package progress

import (
	"context"
	"fmt"
	"io"
)

// PlainReporter writes one line per event, suitable for pipes, CI logs,
// and --no-tui runs.
type PlainReporter struct {
	out      io.Writer
	lastStage Stage
	started  bool
}

// NewPlainReporter builds a PlainReporter writing to cfg.Output.
func NewPlainReporter(cfg Config) *PlainReporter {
	return &PlainReporter{out: cfg.Output, lastStage: -1}
}

func (p *PlainReporter) Start(_ context.Context) error {
	p.started = true
	fmt.Fprintln(p.out, "statidx build starting")
	return nil
}

func (p *PlainReporter) Update(event Event) {
	if event.Stage != p.lastStage {
		fmt.Fprintf(p.out, "[%s] %s\n", event.Stage.Icon(), event.Stage)
		p.lastStage = event.Stage
	}
	if event.CurrentFile != "" {
		fmt.Fprintf(p.out, "  (%d/%d) %s\n", event.Current, event.Total, event.CurrentFile)
	} else if event.Message != "" {
		fmt.Fprintf(p.out, "  %s\n", event.Message)
	}
}

func (p *PlainReporter) AddError(event ErrorEvent) {
	level := "error"
	if event.IsWarn {
		level = "warning"
	}
	fmt.Fprintf(p.out, "[%s] %s: %v\n", level, event.File, event.Err)
}

func (p *PlainReporter) Complete(stats CompletionStats) {
	fmt.Fprintf(p.out, "[DONE] %d documents, %d containers, %d errors, %d warnings in %s\n",
		stats.Documents, stats.Containers, stats.Errors, stats.Warnings, stats.Duration)
}

func (p *PlainReporter) Stop() error {
	return nil
}
