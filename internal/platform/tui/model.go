package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/z13/neural-break/internal/core"
	"github.com/z13/neural-break/internal/games/survival"
	"github.com/z13/neural-break/internal/registry"
	"github.com/z13/neural-break/internal/save"
	"github.com/z13/neural-break/internal/storage"
)

// GameModel is the Bubble Tea model that runs a single game. It is used
// both for local play and inside SSH sessions.
type GameModel struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	profile     *save.Profile
	profilePath string
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	startedAt   time.Time
	quitting    bool
	backToMenu  bool
	resultSaved bool // Result already persisted for the current game over
}

// NewGameModel creates a model for the given game. store and profile may be
// nil; persistence is then skipped.
func NewGameModel(game registry.Game, store *storage.Store, profile *save.Profile, profilePath string, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:        game,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:       store,
		profile:     profile,
		profilePath: profilePath,
		config:      cfg,
		inputFrame:  core.NewInputFrame(),
		keyMapper:   NewKeyMapper(),
		startedAt:   time.Now(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances the model.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Esc/B returns to the menu once the run is over or paused.
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Mid-run resizes restart the simulation with the new arena.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.startedAt = time.Now()
	}

	return m, nil
}

// handleTick advances the simulation by one step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.resultSaved = false
		m.startedAt = time.Now()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.resultSaved {
		m.persistResult()
		m.resultSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// persistResult saves the finished run: score, run record, and profile
// totals with any achievements earned. All best-effort; the session
// continues even if persistence fails.
func (m *GameModel) persistResult() {
	if m.store != nil && m.gameState.Score > 0 {
		//nolint:errcheck
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	sg, ok := m.game.(*survival.Game)
	if !ok {
		return
	}

	seconds := int(time.Since(m.startedAt).Seconds())

	if m.store != nil {
		//nolint:errcheck
		m.store.RecordRun(storage.RunResult{
			GameID:     m.game.ID(),
			Score:      m.gameState.Score,
			Wave:       m.gameState.Wave,
			Kills:      sg.Kills(),
			EliteKills: sg.EliteKills(),
			Duration:   seconds,
		})
	}

	if m.profile != nil {
		m.profile.MergeRun(save.RunSummary{
			Wave:         m.gameState.Wave,
			Kills:        sg.Kills(),
			EliteKills:   sg.EliteKills(),
			BossDefeated: sg.Achievements().Has(survival.AchBossSlayer),
			Seconds:      seconds,
			Achievements: sg.Achievements().Unlocked(),
		})
		if m.profilePath != "" {
			//nolint:errcheck
			save.Save(m.profilePath, m.profile)
		}
	}
}

// View renders the current game state.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, profile *save.Profile, profilePath string, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, profile, profilePath, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
