package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagResetHighScore bool

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var highscoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "Show the saved high score",
	Long: `Display the best score recorded in the high score database.

Examples:
  snake highscore
  snake highscore --reset`,
	Args: cobra.NoArgs,
	Run:  runHighScore,
}

func init() {
	highscoreCmd.Flags().BoolVar(&flagResetHighScore, "reset", false, "Delete the saved high score")
}

func runHighScore(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fatal("opening high score database: %v", err)
	}
	defer store.Close()

	key := cfg.Storage.Key

	if flagResetHighScore {
		if err := store.ClearHighScore(key); err != nil {
			store.Close()
			fatal("%v", err)
		}
		fmt.Println("High score cleared.")
		return
	}

	entry, err := store.Entry(key)
	if err != nil {
		store.Close()
		fatal("retrieving high score: %v", err)
	}

	fmt.Println(titleStyle.Render("Snake - High Score"))
	fmt.Println()

	if entry.Score == 0 {
		fmt.Println("No high score recorded yet.")
		fmt.Println()
		fmt.Println(dimStyle.Render("Play 'snake' to set the first one!"))
		return
	}

	fmt.Printf("  Best: %s\n", scoreStyle.Render(fmt.Sprint(entry.Score)))
	if !entry.UpdatedAt.IsZero() {
		fmt.Println(dimStyle.Render("  Set:  " + entry.UpdatedAt.Format("2006-01-02 15:04")))
	}
}
