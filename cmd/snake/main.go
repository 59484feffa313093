// snake is the classic grid snake game for the terminal and the desktop.
//
// Usage:
//
//	snake                    - Play in the terminal (same as snake play)
//	snake play               - Play with the chosen frontend
//	snake frontends          - List available frontends
//	snake highscore          - Show or reset the saved high score
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--db <path>         - High score database (default from config: ~/.snake/snake.db)
//	--seed <value>      - RNG seed for reproducible food placement
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-snake/internal/platform/canvas"
	_ "github.com/vovakirdan/tui-snake/internal/platform/term"
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game",
	Long: `Steer the snake around the board, eat food to grow and score,
and avoid the walls and your own tail.

Available commands:
  play       - Play the game (default)
  frontends  - Show all available frontends
  highscore  - Show or reset the high score
  config     - Print the effective configuration

Examples:
  snake
  snake play --frontend canvas --sound
  snake play --tick-ms 100 --seed 42
  snake highscore --reset`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to high score database (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(highscoreCmd)
	rootCmd.AddCommand(configCmd)
}

// fatal prints an error the way every command reports one and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the configuration named by --config, exiting on error.
func loadConfig() config.SnakeConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	return cfg
}

// dbPath returns the database path from --db or the config.
func dbPath(cfg config.SnakeConfig) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.DBPath
}

// newLogger builds the logger. Logs go to --log-file or log.file when set,
// otherwise to fallback. The returned function closes the log file.
func newLogger(cfg config.SnakeConfig, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	path := flagLogFile
	if path == "" {
		path = cfg.Log.File
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})

	levelName := flagLogLevel
	if levelName == "" {
		levelName = cfg.Log.Level
	}
	if levelName != "" {
		level, err := log.ParseLevel(levelName)
		if err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
		}
		logger.SetLevel(level)
	}

	return logger, closeFn, nil
}
