package progress

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// TUIReporter renders a build as a live bubbletea program: a spinner beside
// the current stage, a progress bar while the stage has a known total, and
// a scroll of the most recent file names, messages and errors/warnings.
type TUIReporter struct {
	program *tea.Program
	done    chan struct{}
}

// NewTUIReporter starts (but does not yet run) a bubbletea program bound
// to cfg. The program's event loop starts on Start.
func NewTUIReporter(cfg Config) (*TUIReporter, error) {
	m := newModel(GetStyles(cfg.NoColor))
	program := tea.NewProgram(m, tea.WithOutput(cfg.Output))
	return &TUIReporter{program: program, done: make(chan struct{})}, nil
}

func (t *TUIReporter) Start(_ context.Context) error {
	go func() {
		_, _ = t.program.Run()
		close(t.done)
	}()
	return nil
}

func (t *TUIReporter) Update(event Event) {
	t.program.Send(eventMsg(event))
}

func (t *TUIReporter) AddError(event ErrorEvent) {
	t.program.Send(errorMsg(event))
}

func (t *TUIReporter) Complete(stats CompletionStats) {
	t.program.Send(completeMsg(stats))
}

func (t *TUIReporter) Stop() error {
	t.program.Quit()
	<-t.done
	return nil
}

type eventMsg Event
type errorMsg ErrorEvent
type completeMsg CompletionStats

const maxRecentMessages = 5

type model struct {
	styles   Styles
	spinner  spinner.Model
	bar      progress.Model
	stage    Stage
	current  int
	total    int
	recent   []string
	errors   int
	warnings int
	done     bool
	stats    CompletionStats
}

func newModel(styles Styles) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Active

	b := progress.New(progress.WithDefaultGradient())

	return model{styles: styles, spinner: s, bar: b, stage: StageScanning}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.stage = msg.Stage
		m.current = msg.Current
		m.total = msg.Total
		if msg.CurrentFile != "" {
			m.pushRecent(msg.CurrentFile)
		} else if msg.Message != "" {
			m.pushRecent(msg.Message)
		}
		return m, nil

	case errorMsg:
		if msg.IsWarn {
			m.warnings++
		} else {
			m.errors++
		}
		m.pushRecent(fmt.Sprintf("%s: %v", msg.File, msg.Err))
		return m, nil

	case completeMsg:
		m.done = true
		m.stats = CompletionStats(msg)
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *model) pushRecent(line string) {
	m.recent = append(m.recent, line)
	if len(m.recent) > maxRecentMessages {
		m.recent = m.recent[len(m.recent)-maxRecentMessages:]
	}
}

func (m model) View() string {
	if m.done {
		return m.styles.Success.Render(fmt.Sprintf(
			"Done: %d documents, %d containers, %d errors, %d warnings in %s\n",
			m.stats.Documents, m.stats.Containers, m.stats.Errors, m.stats.Warnings, m.stats.Duration))
	}

	header := m.styles.Header.Render("statidx build")
	stageLine := fmt.Sprintf("%s %s", m.spinner.View(), m.styles.Stage.Render(m.stage.String()))

	var progressLine string
	if m.total > 0 {
		progressLine = m.bar.ViewAs(float64(m.current) / float64(m.total))
	}

	var body string
	for _, line := range m.recent {
		body += m.styles.Dim.Render(line) + "\n"
	}

	return m.styles.Panel.Render(fmt.Sprintf("%s\n%s\n%s\n%s", header, stageLine, progressLine, body))
}
