// nightfall is a 2D platformer: reach the exit of each level before the
// timer runs out, collecting gems and avoiding patrolling enemies.
//
// Usage:
//
//	nightfall [play]          - Play in a window (default)
//	nightfall term            - Play in the terminal
//	nightfall validate [dir]  - Check level files for errors
//	nightfall scores          - Show the best levels and runs
//
// Global flags:
//
//	--config <path>     - YAML tuning overrides
//	--log-level <lvl>   - debug, info, warn or error
//	--db <path>         - Run history database (default: ~/.nightfall/history.db)
//	--levels <dir>      - Load levels from a directory instead of the built-in set
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/automoto/nightfall/assets"
	"github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/storage"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagDBPath   string
	flagLevels   string

	logger *log.Logger
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nightfall",
	Short: "Nightfall - a 2D platformer",
	Long: `Nightfall is a 2D platformer. Reach the exit of each level before
the timer runs out; time left over turns into bonus points.

Available commands:
  play      - Play in a window (default)
  term      - Play in the terminal
  validate  - Check level files for errors
  scores    - Show the best levels and runs`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML tuning overrides (env "+config.EnvConfig+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error (env "+config.EnvLogLevel+")")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database (env "+config.EnvDB+")")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files, built-in levels when empty (env "+config.EnvLevels+")")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup builds the logger and applies configuration before any command.
func setup(cmd *cobra.Command, args []string) error {
	// Environment fills in flags left unset; .env was loaded in main.
	for flag, env := range map[string]string{
		"config":    config.EnvConfig,
		"log-level": config.EnvLogLevel,
		"db":        config.EnvDB,
		"levels":    config.EnvLevels,
	} {
		if v := os.Getenv(env); v != "" && !cmd.Flags().Changed(flag) {
			if err := cmd.Flags().Set(flag, v); err != nil {
				return fmt.Errorf("%s: %w", env, err)
			}
		}
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "nightfall",
		Level:           level,
	})

	applied, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if applied != "" {
		logger.Info("config applied", "path", applied)
	}
	return nil
}

// levelSource serves levels from --levels when set, else the embedded set.
func levelSource() *assets.LevelSource {
	if flagLevels != "" {
		logger.Debug("loading levels from directory", "dir", flagLevels)
		return assets.NewLevelSource(os.DirFS(flagLevels), ".")
	}
	return assets.NewLevelSource(assets.Embedded(), assets.LevelsDir)
}

// openHistory opens the run history. Play continues without it on failure.
func openHistory() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "error", err)
		return nil
	}
	return store
}
