package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mini-arcade/internal/audio"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/logging"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/share"
)

// Options carries the session collaborators of a Model.
// Nil fields fall back to silent implementations.
type Options struct {
	Chime    audio.Chime
	Sharer   share.Sharer
	ShareURL string
	Logger   *log.Logger
}

// shareResultMsg reports the outcome of a share command.
type shareResultMsg struct {
	err error
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	config      core.RuntimeConfig
	fixedSeed   bool // Keep the seed across restarts
	loop        *FrameLoop
	pointer     *PointerTracker
	keys        KeyMap
	help        help.Model
	inputFrame  core.InputFrame
	opts        Options
	shareStatus string
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom terminal row is reserved for the key help.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Chime == nil {
		opts.Chime = audio.NopChime{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	screen := core.NewScreen(cfg.ScreenW, canvasHeight(cfg.ScreenH))
	return Model{
		game:       game,
		screen:     screen,
		config:     cfg,
		fixedSeed:  fixed,
		loop:       NewFrameLoop(cfg.TickRate),
		pointer:    NewPointerTracker(viewportFor(game, screen)),
		keys:       DefaultKeyMap(game.Input()),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		opts:       opts,
	}
}

// canvasHeight returns the rows left for the game after the help line.
func canvasHeight(termH int) int {
	return core.Max(0, termH-1)
}

// viewportFor returns the projection used for pointer input.
func viewportFor(game registry.Game, s *core.Screen) core.Viewport {
	pg, ok := game.(registry.PointerGame)
	if !ok {
		return core.Viewport{}
	}
	w, h := pg.WorldSize()
	return core.NewViewport(w, h, s.Width(), s.Height())
}

// Init starts the game and its frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return m.loop.Start()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case shareResultMsg:
		if msg.err != nil {
			m.shareStatus = "Share failed"
			m.opts.Logger.Warn("share failed", "game", m.game.ID(), "err", msg.err)
		} else {
			m.shareStatus = "Copied to clipboard!"
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key := msg.String(); key == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.loop.Stop()
		return m, tea.Quit
	case core.ActionRestart:
		return m.restart()
	case core.ActionShare:
		return m, m.shareCmd()
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse feeds pointer gestures to games played with the mouse.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.game.Input() != core.InputPointer || m.game.State().Over() {
		return m, nil
	}
	if s, ok := m.pointer.Handle(msg); ok {
		m.inputFrame.AddSlice(s)
	}
	return m, nil
}

// handleResize adapts the canvas to the new terminal size. Games simulate
// in world units, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, canvasHeight(msg.Height))
	m.pointer.SetViewport(viewportFor(m.game, m.screen))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step if the tick belongs to the live loop.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	next, ok := m.loop.Accept(msg)
	if !ok {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.handleEvents(result)
	m.keys.SetGameOver(result.State.Over(), m.game.Input())

	return m, next
}

// handleEvents triggers the side effects of one tick.
func (m Model) handleEvents(result core.StepResult) {
	for _, ev := range result.Events {
		m.opts.Logger.Debug("event", "game", m.game.ID(), "kind", ev.Kind, "count", ev.Count,
			"score", result.State.Score, "lives", result.State.Lives, "stage", result.State.Stage)

		switch ev.Kind {
		case core.EventSlice:
			m.opts.Chime.Play()
		case core.EventGameOver, core.EventVictory:
			m.opts.Logger.Info("session ended", "game", m.game.ID(), "mode", result.State.Mode,
				"score", result.State.Score, "stage", result.State.Stage)
		}
	}
}

// restart begins a new session after a terminal mode.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.game.State().Over() {
		return m, nil
	}
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.inputFrame.Clear()
	m.pointer.Reset()
	m.shareStatus = ""
	m.keys.SetGameOver(false, m.game.Input())
	m.opts.Logger.Info("session restarted", "game", m.game.ID(), "seed", m.config.Seed)
	return m, m.loop.Start()
}

// shareCmd publishes the final score without blocking the UI.
func (m Model) shareCmd() tea.Cmd {
	st := m.game.State()
	if !st.Over() || m.opts.Sharer == nil {
		return nil
	}
	sharer := m.opts.Sharer
	text := share.Message(m.game.Title(), st.Score, m.opts.ShareURL)
	return func() tea.Msg {
		return shareResultMsg{err: sharer.Share(text)}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the canvas, the end-of-game overlay and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var body string
	if st := m.game.State(); st.Over() {
		body = composeOverlay(m.screen, overlayContent(st, m.shareStatus))
	} else {
		body = RenderScreen(m.screen)
	}
	return body + "\n" + m.help.View(m.keys)
}

// ShareStatus returns the outcome of the last share, if any.
func (m Model) ShareStatus() string {
	return m.shareStatus
}

// Run starts the Bubble Tea program for one game session.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	model.loop.Stop()
	if err != nil {
		return fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}
	return nil
}
