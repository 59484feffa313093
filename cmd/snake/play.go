package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/sound"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagFrontend string
	flagSound    bool
	flagTickMS   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game with the chosen frontend.

Controls:
  Arrows/WASD  - Steer
  Enter        - Start, or play again after game over
  Space/P      - Pause and resume
  R            - Reset
  Q/Ctrl+C     - Quit

The canvas frontend also has on-screen buttons for mouse and touch.

Examples:
  snake play
  snake play --frontend term
  snake play --frontend canvas --sound
  snake play --tick-ms 100`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command shares them
// so that a bare "snake" accepts the same options.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "tui", "Frontend to play with (see 'snake frontends')")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	cmd.Flags().IntVar(&flagTickMS, "tick-ms", 0, "Tick period in milliseconds (default from config)")
}

// applyPlayFlags overrides cfg with the play flags and revalidates it.
func applyPlayFlags(cfg config.SnakeConfig) (config.SnakeConfig, error) {
	if flagTickMS != 0 {
		cfg.Game.TickMS = flagTickMS
	}
	if flagSound {
		cfg.Sound.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := applyPlayFlags(loadConfig())
	if err != nil {
		fatal("%v", err)
	}

	if !registry.Exists(flagFrontend) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", flagFrontend)
		fmt.Fprintln(os.Stderr, "Run 'snake frontends' to see available frontends.")
		os.Exit(1)
	}

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		fatal("%v", err)
	}

	// Terminal frontends own the screen, so logs only go to a file
	var fallback io.Writer = io.Discard
	if frontend.ID() == "canvas" {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(cfg, fallback)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	env := registry.Env{
		Config: cfg,
		Logger: logger,
		Seed:   flagSeed,
	}

	// Open high score storage
	var highScores snake.HighScoreStore
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		logger.Warn("could not open high score database, scores will not persist", "error", err)
		highScores = storage.NewMemory(0)
	} else {
		defer store.Close()
		highScores = store.Keeper(cfg.Storage.Key)
	}
	env.Store = highScores

	if cfg.Sound.Enabled {
		sm := sound.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound unavailable, playing silently", "error", err)
		} else {
			defer sm.Cleanup()
			env.Sound = sm
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "frontend", frontend.ID(), "grid", cfg.Grid.Dimension, "tick", cfg.TickInterval())
	runErr := frontend.Run(ctx, env)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Error("frontend failed", "error", runErr)
		// Deferred cleanups are skipped by os.Exit
		closeLog()
		if store != nil {
			store.Close()
		}
		fatal("%v", runErr)
	}
}
