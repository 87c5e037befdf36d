package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/z13/neural-break/internal/core"
	"github.com/z13/neural-break/internal/games/survival"
	"github.com/z13/neural-break/internal/platform/tui"
	"github.com/z13/neural-break/internal/registry"
	"github.com/z13/neural-break/internal/save"
	"github.com/z13/neural-break/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive mode picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Left/Right to cycle difficulty,
Enter to select a mode. After a run ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Cycle difficulty
  Enter/Space  - Select mode
  Tab          - High scores
  Q            - Quit

Examples:
  neuralbreak menu
  neuralbreak menu --fps 30
  neuralbreak menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	logger := log.New(os.Stderr)
	profPath := profilePath()
	profile, err := save.Load(profPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load profile: %v\n", err)
		profile = nil
		profPath = ""
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	difficulty := "normal"
	if profile != nil && profile.Settings.Difficulty != "" {
		difficulty = profile.Settings.Difficulty
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		survival.SetDifficultyPreset(difficulty)

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Remember the player's picks
		if profile != nil {
			profile.Settings.Difficulty = difficulty
			profile.Settings.LastGame = gameID
		}

		// Fresh seed for each run
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, profile, profPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if profile != nil && profPath != "" {
		if err := save.Save(profPath, profile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save profile: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
