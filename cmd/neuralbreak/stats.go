package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/z13/neural-break/internal/games/survival"
	"github.com/z13/neural-break/internal/registry"
	"github.com/z13/neural-break/internal/save"
	"github.com/z13/neural-break/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats <mode>",
	Short: "Show aggregated run statistics for a mode",
	Long: `Display aggregated statistics for the specified game mode:
games played, best score, best wave, total kills, recent runs, and
unlocked achievements from the player profile.

Examples:
  neuralbreak stats survival
  neuralbreak stats bossrush`,
	Args: cobra.ExactArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'neuralbreak list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Statistics - %s\n", gameID)
	fmt.Println()
	fmt.Printf("  Games played:  %d\n", stats.GamesCount)
	fmt.Printf("  High score:    %d\n", stats.HighScore)
	fmt.Printf("  Average score: %.0f\n", stats.AvgScore)
	fmt.Printf("  Best wave:     %d\n", stats.BestWave)
	fmt.Printf("  Total kills:   %d\n", stats.TotalKills)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	if best, err := store.BestRun(gameID); err == nil && best != nil {
		fmt.Println()
		fmt.Printf("  Best run: wave %d, score %d, %d kills (%d elite), %ds\n",
			best.Wave, best.Score, best.Kills, best.EliteKills, best.Duration)
	}

	if runs, err := store.RecentRuns(gameID, 5); err == nil && len(runs) > 0 {
		fmt.Println()
		fmt.Println("  Recent runs:")
		for _, r := range runs {
			fmt.Printf("    wave %-3d score %-8d kills %-4d %s\n",
				r.Wave, r.Score, r.Kills, r.CreatedAt.Format("Jan 02 15:04"))
		}
	}

	// Profile achievements span all modes
	profile, err := save.Load(profilePath(), log.New(os.Stderr))
	if err == nil && len(profile.Achievements) > 0 {
		fmt.Println()
		fmt.Println("  Achievements:")
		for id, unlockedAt := range profile.Achievements {
			fmt.Printf("    %-16s %s  (%s)\n", survival.AchievementTitle(id), unlockedAt, id)
		}
	}
}
