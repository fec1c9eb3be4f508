package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-twinblade/internal/core"
	"github.com/vovakirdan/tui-twinblade/internal/games/twinblade"
	"github.com/vovakirdan/tui-twinblade/internal/storage"
)

// Model is the Bubble Tea model that drives one twinblade session.
type Model struct {
	game     *twinblade.Game
	renderer *Renderer
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig

	keys     *KeyMapper
	help     help.Model
	input    *heldInput
	floaters []Floater

	tally     storage.Tally
	attempt   int
	runSaved  bool // whether the current attempt has been logged
	gameState core.GameState
	quitting  bool
}

// NewModel resets the game and wraps it in a Bubble Tea model.
// A nil store disables the run log; a nil logger discards output.
func NewModel(game *twinblade.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := game.Reset(cfg); err != nil {
		return Model{}, fmt.Errorf("tui: cannot start game: %w", err)
	}

	return Model{
		game:      game,
		renderer:  NewRenderer(game.Config()),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		config:    cfg,
		keys:      NewKeyMapper(),
		help:      help.New(),
		input:     newHeldInput(),
		attempt:   1,
		gameState: game.State(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		if !m.gameState.Terminal() {
			m.saveRun(storage.OutcomeAbandoned)
		}
		m.quitting = true
		return m, tea.Quit
	}

	ranged := m.game.Player().Character.Ranged()
	m.input.Press(action, ranged)
	return m, nil
}

// handleResize processes window resize events. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation one step and books its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasTerminal := m.gameState.Terminal()

	result := m.game.Step(m.input.Frame())
	m.input.Advance()
	m.gameState = result.State

	// Restart or next level started a fresh attempt.
	if wasTerminal && !m.gameState.Terminal() {
		m.attempt++
		m.tally.Reset()
		m.runSaved = false
		m.floaters = m.floaters[:0]
		m.input.Reset()
		def, idx := m.game.Level()
		m.logger.Info("attempt started", "attempt", m.attempt, "level", def.ID, "index", idx)
	}

	m.observe(result.Events)
	m.ageFloaters()

	switch {
	case m.gameState.Won:
		m.saveRun(storage.OutcomeVictory)
	case m.gameState.GameOver:
		m.saveRun(storage.OutcomeDefeat)
	}

	return m, tickCmd(m.config.TickRate)
}

// observe feeds one tick of events to the tally, the journal and the
// floating text layer.
func (m *Model) observe(events []core.Event) {
	if len(events) == 0 {
		return
	}
	m.tally.Observe(events)
	if m.store != nil {
		if err := m.store.Journal(m.attempt, events); err != nil {
			m.logger.Warn("journal failed", "err", err)
		}
	}
	for _, e := range events {
		if e.Kind == core.EventText {
			m.floaters = append(m.floaters, Floater{Text: e.Subject, Pos: e.Pos, Life: floaterLife})
		}
	}
}

// ageFloaters drifts floating text upward and drops expired entries.
func (m *Model) ageFloaters() {
	if m.gameState.Paused {
		return
	}
	kept := m.floaters[:0]
	for _, f := range m.floaters {
		f.Life--
		f.Pos.Y--
		if f.Life > 0 {
			kept = append(kept, f)
		}
	}
	m.floaters = kept
}

// saveRun logs the current attempt once.
func (m *Model) saveRun(outcome string) {
	if m.runSaved {
		return
	}
	m.runSaved = true

	def, idx := m.game.Level()
	run := storage.Run{
		Attempt:    m.attempt,
		LevelID:    def.ID,
		LevelIndex: idx,
		Seed:       m.config.Seed,
		Outcome:    outcome,
		Score:      m.gameState.Score,
		Ticks:      m.game.Tick(),
	}
	m.tally.Fill(&run)
	m.logger.Info("run finished", "level", def.ID, "outcome", outcome, "score", run.Score, "kills", run.Kills)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("cannot save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	snap := m.game.Snapshot()
	m.renderer.Draw(m.screen, &snap, m.floaters)

	dir := filepath.Join(os.Getenv("HOME"), ".twinblade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", snap.LevelID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys.Keys())
	footerRows := strings.Count(footer, "\n") + 1
	m.screen.Resize(m.config.ScreenW, max(0, m.config.ScreenH-footerRows))

	snap := m.game.Snapshot()
	m.renderer.Draw(m.screen, &snap, m.floaters)
	return RenderScreen(m.screen, hudRows) + "\n" + footer
}

// Run starts the Bubble Tea program for the given game.
func Run(game *twinblade.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, store, cfg, logger)
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
