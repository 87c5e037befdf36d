// neuralbreak is a terminal bullet-hell survival game.
//
// Usage:
//
//	neuralbreak list              - List available game modes
//	neuralbreak play <mode>       - Play a mode directly
//	neuralbreak menu              - Interactive mode picker
//	neuralbreak serve             - Start SSH server for remote play
//	neuralbreak scores <mode>     - Show high scores for a mode
//	neuralbreak stats <mode>      - Show aggregated run statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.neuralbreak/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/z13/neural-break/internal/save"

	// Import game modes to register them
	_ "github.com/z13/neural-break/internal/games/survival"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagProfile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neuralbreak",
	Short: "Neural Break - terminal bullet-hell survival",
	Long: `Neural Break is a terminal bullet-hell survival game. Pilot a
process through a hostile network, auto-firing at corrupted entities
while waves escalate and bosses intrude.

Available commands:
  list     - Show all available game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View aggregated run statistics

Examples:
  neuralbreak list
  neuralbreak play survival
  neuralbreak play bossrush --difficulty hard
  neuralbreak menu
  neuralbreak serve --ssh :2222
  neuralbreak scores survival`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neuralbreak/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Path to player profile (default: ~/.neuralbreak/profile.json)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}

// profilePath resolves the profile flag to a concrete path.
func profilePath() string {
	if flagProfile != "" {
		return flagProfile
	}
	return save.DefaultPath()
}
