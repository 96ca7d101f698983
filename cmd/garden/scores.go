package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garden/internal/registry"
	"github.com/vovakirdan/space-garden/internal/storage"
)

var flagRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show scores and run history for a mode",
	Long: `Display the top 10 scores, aggregate stats and the latest runs for
the specified mode.

Examples:
  garden scores garden
  garden scores garden_sandbox --runs 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of recent runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'garden list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := printScores(store, gameID, title); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 && len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'garden play %s' to start a history!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d   Longest run: %s   Fruit picked: %d\n",
		stats.HighScore, survived(stats.LongestRun), stats.TotalFruit)
	if stats.CommonDeath != "" {
		fmt.Printf("Most common death: %s\n", stats.CommonDeath)
	}

	if len(runs) == 0 {
		return nil
	}
	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-20s  %-8s  %-6s  %-6s  %s\n", "Seed", "Survived", "Score", "Fruit", "Cause")
	for _, r := range runs {
		cause := r.Cause
		if cause == "" {
			cause = "quit"
		}
		fmt.Printf("  %-20d  %-8s  %-6d  %-6d  %s\n", r.Seed, survived(r.Survived()), r.Score, r.Harvested, cause)
	}
	return nil
}

// survived formats a survival time as mm:ss.
func survived(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
