// Package survival implements the Neural Break game: a top-down bullet-hell
// survival arena. The player ship auto-fires at the nearest enemy while waves
// of pooled enemies close in, elites roll at spawn time, and every few waves
// a multi-phase boss materializes.
package survival

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/z13/neural-break/internal/config"
	"github.com/z13/neural-break/internal/core"
	"github.com/z13/neural-break/internal/event"
	"github.com/z13/neural-break/internal/registry"
)

// GameState constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeSurvival GameMode = iota // Endless waves, boss every Nth wave
	ModeBossRush                 // Every wave is a boss wave
)

// HUDRows is the number of screen rows reserved above the arena.
const HUDRows = 2

const (
	playerGlyph      = '▲'
	playerShotGlyph  = '•'
	enemyShotGlyph   = '·'
	comboWindowTicks = 180
	comboScoreStep   = 10 // Every N combo adds +1x to the score multiplier
	hitRadius        = 1.0
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// pkgLogger is the logger injected by the CLI; defaults to discard so the
// simulation stays silent in tests.
var pkgLogger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetLogger sets the logger used for runtime warnings (pool exhaustion etc).
func SetLogger(l *log.Logger) {
	if l != nil {
		pkgLogger = l
	}
}

// Game implements the Neural Break game logic.
type Game struct {
	mode GameMode

	// Game objects
	player      *Player
	spawner     *Spawner
	enemies     []*Enemy
	boss        *Boss
	playerShots *ProjectileSet
	enemyShots  *ProjectileSet
	pickups     []Pickup
	waves       *WaveManager

	// Game state
	state      string
	score      int
	combo      int
	comboTimer int
	kills      int
	eliteKills int
	tickCount  int

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.SurvivalConfig
	difficulty *config.DifficultyManager
	rng        *core.RNG
	bus        *event.Bus
	logger     *log.Logger

	achievements *Achievements

	// Layout
	arena          core.Rect
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new survival game instance.
func New() *Game {
	return &Game{mode: ModeSurvival}
}

// NewBossRush creates a new game instance in boss-rush mode.
func NewBossRush() *Game {
	return &Game{mode: ModeBossRush}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeBossRush {
		return "bossrush"
	}
	return "survival"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeBossRush {
		return "Neural Break (Boss Rush)"
	}
	return "Neural Break"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = pkgLogger

	// Load game config
	cfg, err := config.LoadSurvival(configPath)
	if err != nil {
		g.logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultSurvivalConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplySurvivalPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = core.NewRNG(runtime.Seed)
	g.bus = event.NewBus()

	// Check screen size
	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Arena is the screen minus the HUD rows.
	g.arena = core.NewRect(0, HUDRows, runtime.ScreenW, runtime.ScreenH-HUDRows)

	// Initialize game state
	g.state = StatePlaying
	g.score = 0
	g.combo = 0
	g.comboTimer = 0
	g.kills = 0
	g.eliteKills = 0
	g.tickCount = 0

	// Initialize game objects
	g.player = NewPlayer(cfg.Player, g.arena)
	g.spawner = NewSpawner(&g.cfg, g.difficulty, g.logger)
	g.enemies = g.enemies[:0]
	g.boss = nil
	g.playerShots = NewProjectileSet("player_shots", cfg.Weapon.PoolSize, g.logger)
	g.enemyShots = NewProjectileSet("enemy_shots", cfg.Spawning.EnemyProjectilePool, g.logger)
	g.pickups = g.pickups[:0]
	g.waves = NewWaveManager(cfg.Waves, g.mode == ModeBossRush)
	g.achievements = NewAchievements(g.bus)
}

// Bus returns the game's event bus. External systems (persistence, HUD)
// subscribe here.
func (g *Game) Bus() *event.Bus {
	return g.bus
}

// Achievements returns the achievement tracker for this run.
func (g *Game) Achievements() *Achievements {
	return g.achievements
}

// Kills returns the number of enemies killed this run.
func (g *Game) Kills() int {
	return g.kills
}

// EliteKills returns the number of elites killed this run.
func (g *Game) EliteKills() int {
	return g.eliteKills
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	// Don't update if paused or game over
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.updateWaves()
	g.player.Update(in, g.arena)
	g.updateAutoFire()
	g.updateSpawning()
	g.updateEnemies()
	g.updateBoss()
	g.playerShots.Update(g.spawnField())
	g.enemyShots.Update(g.spawnField())
	g.collidePlayerShots()
	g.collideEnemyShots()
	g.collideContacts()
	g.updatePickups()
	g.reapEnemies()
	g.decayCombo()

	return core.StepResult{State: g.State()}
}

// updateWaves advances the wave clock and spawns the boss on boss waves.
func (g *Game) updateWaves() {
	wave, started := g.waves.Update()
	if !started {
		return
	}

	bossWave := g.waves.IsBossWave(wave)
	g.bus.Publish(event.WaveStarted{Number: wave, Boss: bossWave})

	if bossWave && g.boss == nil {
		cx, _ := g.arena.Center()
		pos := core.Vec2{X: float64(cx), Y: float64(g.arena.Y + 2)}
		g.boss = NewBoss(g.cfg.Boss, pos)
		g.bus.Publish(event.BossSpawned{Wave: wave})
	}
}

// updateAutoFire fires the player weapon at the nearest target in range.
func (g *Game) updateAutoFire() {
	target, dist, ok := g.nearestTarget()
	if !ok || dist > g.cfg.Weapon.Range {
		return
	}
	if !g.player.ReadyToFire(g.cfg.Weapon) {
		return
	}

	dir := target.Sub(g.player.Pos).Normalized()
	g.playerShots.Fire(g.player.Pos, dir, g.cfg.Weapon.ProjectileSpeed, g.cfg.Weapon.Damage)
}

// nearestTarget returns the position and distance of the closest collidable
// enemy or the boss.
func (g *Game) nearestTarget() (core.Vec2, float64, bool) {
	var best core.Vec2
	bestDist := -1.0

	for _, e := range g.enemies {
		if !e.Collidable() {
			continue
		}
		d := g.player.Pos.Dist(e.Pos)
		if bestDist < 0 || d < bestDist {
			best = e.Pos
			bestDist = d
		}
	}
	if g.boss != nil && !g.boss.Materializing() && g.boss.Alive() {
		d := g.player.Pos.Dist(g.boss.Pos)
		if bestDist < 0 || d < bestDist {
			best = g.boss.Pos
			bestDist = d
		}
	}

	return best, bestDist, bestDist >= 0
}

// updateSpawning runs the spawner and registers any new enemy.
func (g *Game) updateSpawning() {
	e := g.spawner.Update(g, g.difficulty, g.score, g.tickCount, g.waves.Wave(), g.waves.BurstActive())
	if e != nil {
		g.enemies = append(g.enemies, e)
	}
}

// updateEnemies advances every enemy's state machine.
func (g *Game) updateEnemies() {
	for _, e := range g.enemies {
		e.Update(g)
	}
}

// updateBoss advances the boss and publishes phase transitions.
func (g *Game) updateBoss() {
	if g.boss == nil {
		return
	}
	if phase := g.boss.Update(g); phase > 0 {
		g.bus.Publish(event.BossPhaseChanged{Phase: phase})
	}
}

// spawnField is the projectile play area: the arena expanded by the spawn
// ring margin, so shots still hit enemies that are materializing off-screen.
func (g *Game) spawnField() core.Rect {
	m := int(g.cfg.Spawning.RingMargin) + 1
	return core.NewRect(g.arena.X-m, g.arena.Y-m, g.arena.W+2*m, g.arena.H+2*m)
}

// collidePlayerShots resolves player projectiles against enemies and the boss.
// Iterates in reverse so removals don't disturb the live slice mid-pass.
func (g *Game) collidePlayerShots() {
	shots := g.playerShots.Live()
	for i := len(shots) - 1; i >= 0; i-- {
		p := shots[i]
		hit := false

		for _, e := range g.enemies {
			if !e.Collidable() {
				continue
			}
			if p.Pos.Dist(e.Pos) <= hitRadius {
				if e.Damage(p.Damage) {
					g.onEnemyKilled(e)
				}
				hit = true
				break
			}
		}

		if !hit && g.boss != nil && !g.boss.Materializing() && g.boss.Alive() {
			if p.Pos.Dist(g.boss.Pos) <= bossContactReach {
				if g.boss.Damage(p.Damage) {
					g.onBossDefeated()
				}
				hit = true
			}
		}

		if hit {
			g.playerShots.Remove(p)
		}
	}
}

// collideEnemyShots resolves enemy projectiles against the player.
func (g *Game) collideEnemyShots() {
	shots := g.enemyShots.Live()
	for i := len(shots) - 1; i >= 0; i-- {
		p := shots[i]
		if p.Pos.Dist(g.player.Pos) <= hitRadius {
			g.enemyShots.Remove(p)
			g.damagePlayer(p.Damage)
		}
	}
}

// collideContacts resolves enemy body contact against the player.
func (g *Game) collideContacts() {
	for _, e := range g.enemies {
		if !e.Collidable() {
			continue
		}

		if e.Pos.Dist(g.player.Pos) <= e.ContactRadius {
			g.damagePlayer(e.Stats.ContactDamage)
			continue
		}
		for _, seg := range e.SegmentPositions() {
			if seg.Dist(g.player.Pos) <= hitRadius {
				g.damagePlayer(e.Stats.ContactDamage)
				break
			}
		}
	}

	if g.boss != nil && !g.boss.Materializing() && g.boss.Alive() {
		if g.boss.Pos.Dist(g.player.Pos) <= bossContactReach {
			g.damagePlayer(g.cfg.Boss.ContactDamage)
		}
	}
}

// damagePlayer applies damage through the invulnerability window and handles
// death.
func (g *Game) damagePlayer(dmg int) {
	if !g.player.TakeDamage(dmg) {
		return
	}
	g.bus.Publish(event.PlayerDamaged{Damage: dmg, HPLeft: g.player.HP})

	if !g.player.Alive() {
		g.state = StateGameOver
		g.bus.Publish(event.PlayerDied{Wave: g.waves.Wave(), Tick: g.tickCount})
	}
}

// onEnemyKilled handles scoring, events, drops and splitting when an enemy
// enters its dying phase.
func (g *Game) onEnemyKilled(e *Enemy) {
	g.kills++
	if e.Elite {
		g.eliteKills++
	}

	g.combo++
	g.comboTimer = comboWindowTicks
	award := e.Stats.ScoreValue * (1 + g.combo/comboScoreStep)
	g.score += award

	g.bus.Publish(event.EnemyKilled{Kind: e.Kind, Elite: e.Elite, Score: award, Wave: g.waves.Wave()})
	g.bus.Publish(event.ScoreChanged{Score: g.score, Combo: g.combo})

	if e.Kind == config.KindCrystalShard && e.SplitDepth < shardMaxSplits {
		g.splitShard(e)
	}

	g.maybeDropPickup(e.Pos)
}

// splitShard spawns smaller fragments where a crystal shard died.
func (g *Game) splitShard(e *Enemy) {
	for i := 0; i < shardFragments; i++ {
		offset := core.FromAngle(g.rng.Angle()).Scale(1.5)
		f := g.spawner.SpawnAt(config.KindCrystalShard, e.Pos.Add(offset), g.difficulty, g.score, g.tickCount)
		if f == nil {
			return
		}
		f.SplitDepth = e.SplitDepth + 1

		// Fragments are half-strength copies of the parent generation.
		f.Stats.MaxHP = core.Max(1, f.Stats.MaxHP>>uint(f.SplitDepth))
		f.HP = f.Stats.MaxHP
		f.Stats.ScoreValue = core.Max(1, f.Stats.ScoreValue>>uint(f.SplitDepth))

		g.enemies = append(g.enemies, f)
	}
}

// maybeDropPickup rolls a pickup drop at a kill position.
func (g *Game) maybeDropPickup(pos core.Vec2) {
	if !g.rng.Chance(pickupDropChance) {
		return
	}
	kind := PickupRepair
	if g.rng.Chance(0.5) {
		kind = PickupOverdrive
	}
	g.pickups = append(g.pickups, Pickup{Kind: kind, Pos: pos, TTL: pickupTTL})
}

// onBossDefeated handles boss death: score, event, and clearing the arena of
// enemy projectiles as a reward.
func (g *Game) onBossDefeated() {
	g.score += g.cfg.Boss.ScoreValue
	g.bus.Publish(event.BossDefeated{Wave: g.waves.Wave(), Score: g.cfg.Boss.ScoreValue})
	g.bus.Publish(event.ScoreChanged{Score: g.score, Combo: g.combo})
	g.enemyShots.Clear()
	g.boss = nil
}

// updatePickups ages pickups and collects those the player touches.
func (g *Game) updatePickups() {
	kept := g.pickups[:0]
	for _, pk := range g.pickups {
		pk.TTL--
		if pk.TTL <= 0 {
			continue
		}
		if pk.Pos.Dist(g.player.Pos) <= pickupRadius {
			g.player.ApplyPickup(pk.Kind)
			g.bus.Publish(event.PickupCollected{Kind: pk.Kind})
			continue
		}
		kept = append(kept, pk)
	}
	g.pickups = kept
}

// reapEnemies releases dead instances back to their pools.
func (g *Game) reapEnemies() {
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Phase == PhaseDead {
			g.spawner.Pools().Release(e)
			continue
		}
		kept = append(kept, e)
	}
	g.enemies = kept
}

// decayCombo resets the combo when the kill window lapses.
func (g *Game) decayCombo() {
	if g.comboTimer <= 0 {
		return
	}
	g.comboTimer--
	if g.comboTimer == 0 && g.combo > 0 {
		g.combo = 0
		g.bus.Publish(event.ScoreChanged{Score: g.score, Combo: 0})
	}
}

// World interface implementation (behaviors and the boss call these).

// PlayerPos returns the player's position.
func (g *Game) PlayerPos() core.Vec2 {
	return g.player.Pos
}

// Arena returns the playable area.
func (g *Game) Arena() core.Rect {
	return g.arena
}

// RNG returns the shared deterministic random source.
func (g *Game) RNG() *core.RNG {
	return g.rng
}

// FireEnemyShot spawns an enemy projectile.
func (g *Game) FireEnemyShot(from, dir core.Vec2, speed float64, damage int) {
	g.enemyShots.Fire(from, dir, speed, damage)
}

// PullPlayer drags the player toward a point, clamped to the arena.
func (g *Game) PullPlayer(toward core.Vec2, accel float64) {
	pull := toward.Sub(g.player.Pos).Normalized().Scale(accel)
	g.player.Pos = core.ClampVec(g.player.Pos.Add(pull), g.arena)
}

// SummonMinions force-spawns minions in a small circle around a point.
func (g *Game) SummonMinions(around core.Vec2, count int) {
	for i := 0; i < count; i++ {
		offset := core.FromAngle(g.rng.Angle()).Scale(3)
		m := g.spawner.SpawnAt(config.KindDataMite, around.Add(offset), g.difficulty, g.score, g.tickCount)
		if m == nil {
			return
		}
		g.enemies = append(g.enemies, m)
	}
}

// OnEnemyMaterialized publishes spawn events once an enemy becomes alive.
func (g *Game) OnEnemyMaterialized(e *Enemy) {
	g.bus.Publish(event.EnemySpawned{Kind: e.Kind, Elite: e.Elite, Wave: g.waves.Wave()})
	if e.Elite {
		g.bus.Publish(event.EliteSpawned{Kind: e.Kind, Wave: g.waves.Wave()})
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderPickups(dst)
	g.renderEnemies(dst)
	g.renderBoss(dst)
	g.renderProjectiles(dst)
	g.renderPlayer(dst)
	g.renderAnnouncement(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, hull, wave and combo on the top rows.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	hullColor := core.ColorGreen
	switch {
	case g.player.HP*100 <= g.player.MaxHP*25:
		hullColor = core.ColorRed
	case g.player.HP*100 <= g.player.MaxHP*50:
		hullColor = core.ColorYellow
	}
	dst.DrawTextCenteredColored(0, fmt.Sprintf("Hull: %d/%d", g.player.HP, g.player.MaxHP), hullColor)

	waveText := fmt.Sprintf("Wave: %d", g.waves.Wave())
	dst.DrawText(dst.Width()-len(waveText)-1, 0, waveText)

	if g.combo > 1 {
		dst.DrawTextColored(1, 1, fmt.Sprintf("Combo x%d", g.combo), core.ColorBrightYellow)
	}

	if g.boss != nil && g.boss.Alive() {
		g.renderBossBar(dst)
	} else if g.combo <= 1 {
		dst.DrawHLine(0, 1, dst.Width(), '─')
	}
}

// renderBossBar draws the boss health bar on the second HUD row.
func (g *Game) renderBossBar(dst *core.Screen) {
	barW := dst.Width() / 2
	filled := 0
	if g.boss.MaxHP > 0 {
		filled = barW * g.boss.HP / g.boss.MaxHP
	}

	x := (dst.Width() - barW) / 2
	for i := 0; i < barW; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		dst.SetColored(x+i, 1, ch, core.ColorBrightRed)
	}
	label := fmt.Sprintf(" PHASE %d ", g.boss.Phase)
	dst.DrawTextColored(x+(barW-len(label))/2, 1, label, core.ColorBrightWhite)
}

// renderEnemies draws enemies. Materializing enemies blink, dying enemies
// render as fading sparks.
func (g *Game) renderEnemies(dst *core.Screen) {
	for _, e := range g.enemies {
		x, y := int(e.Pos.X), int(e.Pos.Y)

		switch e.Phase {
		case PhaseSpawning:
			if (g.tickCount/4)%2 == 0 {
				dst.SetColored(x, y, '░', core.ColorGray)
			}
		case PhaseAlive:
			for _, seg := range e.SegmentPositions() {
				dst.SetColored(int(seg.X), int(seg.Y), 'o', e.Color)
			}
			dst.SetColored(x, y, e.Glyph, e.Color)
		case PhaseDying:
			dst.SetColored(x, y, '*', core.ColorBrightYellow)
		}
	}
}

// renderBoss draws the boss body.
func (g *Game) renderBoss(dst *core.Screen) {
	if g.boss == nil || !g.boss.Alive() {
		return
	}
	x, y := int(g.boss.Pos.X), int(g.boss.Pos.Y)

	if g.boss.Materializing() {
		if (g.tickCount/4)%2 == 0 {
			dst.SetColored(x, y, '▒', core.ColorGray)
		}
		return
	}

	// 3x2 body around the center.
	for dy := -1; dy <= 0; dy++ {
		for dx := -1; dx <= 1; dx++ {
			dst.SetColored(x+dx, y+dy, bossGlyph, core.ColorBrightRed)
		}
	}
}

// renderProjectiles draws both projectile sets.
func (g *Game) renderProjectiles(dst *core.Screen) {
	for _, p := range g.playerShots.Live() {
		dst.SetColored(int(p.Pos.X), int(p.Pos.Y), playerShotGlyph, core.ColorBrightCyan)
	}
	for _, p := range g.enemyShots.Live() {
		dst.SetColored(int(p.Pos.X), int(p.Pos.Y), enemyShotGlyph, core.ColorOrange)
	}
}

// renderPickups draws uncollected drops.
func (g *Game) renderPickups(dst *core.Screen) {
	for _, pk := range g.pickups {
		dst.SetColored(int(pk.Pos.X), int(pk.Pos.Y), pk.glyph(), core.ColorBrightGreen)
	}
}

// renderPlayer draws the player ship; it blinks while invulnerable.
func (g *Game) renderPlayer(dst *core.Screen) {
	if g.player.Invulnerable() && (g.tickCount/3)%2 == 0 {
		return
	}
	dst.SetColored(int(g.player.Pos.X), int(g.player.Pos.Y), playerGlyph, core.ColorBrightWhite)
}

// renderAnnouncement draws the wave banner while it is active.
func (g *Game) renderAnnouncement(dst *core.Screen) {
	if text, ok := g.waves.Announcement(); ok {
		dst.DrawTextCenteredColored(g.arena.Y+1, text, core.ColorBrightMagenta)
	}
}

// renderOverlay draws paused and game-over boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  Wave: %d  |  Press R to restart", g.score, g.waves.Wave())
		g.drawCenteredBox(dst, "CONNECTION LOST", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Wave:     g.waves.Wave(),
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("survival", func() registry.Game {
		return New()
	})
	registry.Register("bossrush", func() registry.Game {
		return NewBossRush()
	})
}
