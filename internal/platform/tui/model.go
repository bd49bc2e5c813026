package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// helpHeight is the number of lines reserved below the screen buffer.
const helpHeight = 1

// Model is the Bubble Tea model driving one snake engine.
// Bubble Tea delivers key and tick messages on a single goroutine, so the
// engine is never touched concurrently.
type Model struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	engine  *snake.Engine
	screen  *core.Screen
	journal *storage.Journal
	logger  *log.Logger
	keys    KeyMap
	help    help.Model

	tickGen  uint64 // current tick loop; stale TickMsgs are dropped
	ticking  bool
	paused   bool
	recorded bool // whether the current run was counted
	stats    storage.Stats
	top      []storage.Run
	quitting bool
}

// topRuns is how many runs the end-of-run panel lists.
const topRuns = 5

// NewModel creates a model and starts the first run. journal and logger may be nil.
func NewModel(cfg config.Config, rt core.RuntimeConfig, journal *storage.Journal, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.TickInterval <= 0 {
		rt.TickInterval = cfg.TickInterval()
	}

	m := Model{
		cfg:     cfg,
		runtime: rt,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH-helpHeight),
		journal: journal,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		ticking: true,
	}

	if err := m.newRun(rt.Seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newRun builds a fresh engine. A zero seed means time-based.
func (m *Model) newRun(seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine, err := snake.New(m.cfg.Engine(seed), nil)
	if err != nil {
		return err
	}
	m.engine = engine
	m.paused = false
	m.recorded = false
	m.logger.Debug("run started", "seed", seed, "head", engine.Head(), "target", engine.Target(), "heading", engine.Heading())
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickInterval, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-helpHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if m.engine.Terminated() {
			return m, nil
		}
		m.paused = !m.paused
		if m.paused {
			m.stopTicking()
			return m, nil
		}
		return m, m.startTicking()

	case core.ActionRestart:
		if !m.engine.Terminated() {
			return m, nil
		}
		if err := m.newRun(0); err != nil {
			m.logger.Error("cannot start run", "error", err)
			return m, nil
		}
		return m, m.startTicking()
	}

	if heading, ok := HeadingFor(action); ok && !m.paused {
		m.engine.ChangeDirection(heading)
	}
	return m, nil
}

// handleTick advances the engine once and schedules the next tick while
// the run is live.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || !m.ticking {
		return m, nil
	}

	if m.engine.Tick() == snake.StateTerminated {
		m.stopTicking()
		m.finishRun()
		return m, nil
	}

	return m, tickCmd(m.runtime.TickInterval, m.tickGen)
}

func (m *Model) startTicking() tea.Cmd {
	m.tickGen++
	m.ticking = true
	return tickCmd(m.runtime.TickInterval, m.tickGen)
}

func (m *Model) stopTicking() {
	m.ticking = false
}

// finishRun records the ended run once and refreshes the session figures.
// Without a journal the figures are tallied in memory and no top list is kept.
func (m *Model) finishRun() {
	if m.recorded {
		return
	}
	m.recorded = true

	snap := m.engine.Snapshot()
	m.logger.Info("run ended", "outcome", snap.Outcome, "length", snap.Len, "ticks", snap.Tick)

	if m.journal == nil {
		m.tally(snap)
		return
	}
	if _, err := m.journal.Record(snap.Len, snap.Tick, snap.Outcome.String()); err != nil {
		m.logger.Warn("cannot record run", "error", err)
		m.tally(snap)
		return
	}

	stats, err := m.journal.Stats()
	if err != nil {
		m.logger.Warn("cannot read run stats", "error", err)
		m.tally(snap)
	} else {
		m.stats = stats
	}
	top, err := m.journal.Top(topRuns)
	if err != nil {
		m.logger.Warn("cannot read top runs", "error", err)
		return
	}
	m.top = top
}

// tally folds a finished run into the in-memory session figures.
func (m *Model) tally(snap snake.Snapshot) {
	s := &m.stats
	s.AvgLength = (s.AvgLength*float64(s.Runs) + float64(snap.Len)) / float64(s.Runs+1)
	s.Runs++
	s.Best = max(s.Best, snap.Len)
	if snap.Outcome == snake.OutcomeFull {
		s.Fulls++
	}
}

// Stats returns the figures over the finished runs of this session.
func (m Model) Stats() storage.Stats {
	return m.stats
}

// Engine returns the engine driving the current run.
func (m Model) Engine() *snake.Engine {
	return m.engine
}

// Paused reports whether the run is paused.
func (m Model) Paused() bool {
	return m.paused
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.engine.Board(), HUD{
		Snapshot: m.engine.Snapshot(),
		Stats:    m.stats,
		Top:      m.top,
		Paused:   m.paused,
	}, m.cfg.Palette)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal.
func Run(cfg config.Config, rt core.RuntimeConfig, journal *storage.Journal, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, journal, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
