package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/automoto/nightfall/storage"
)

var (
	flagScoresLevel int
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best levels and runs",
	Long: `Display the best finished levels and the best runs from the run history.

Examples:
  nightfall scores
  nightfall scores --level 2`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLevel, "level", -1, "Only show results for this level index")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows per table")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	results, err := store.TopLevelScores(flagScoresLevel, flagScoresLimit)
	if err != nil {
		return err
	}

	if flagScoresLevel < 0 {
		fmt.Println("Best Levels")
	} else {
		fmt.Printf("Best Levels - Level %d\n", flagScoresLevel+1)
	}
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No levels finished yet.")
		fmt.Println()
		fmt.Println("Play 'nightfall' and reach an exit to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-8s  %-9s  %s\n", "Rank", "Level", "Score", "Time Left", "Date")
	fmt.Printf("  %-4s  %-5s  %-8s  %-9s  %s\n", "----", "-----", "-----", "---------", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-5d  %-8d  %-9s  %s\n",
			i+1, r.Level+1, r.Score, r.TimeLeft.Truncate(time.Second).String(), formatDate(r.FinishedAt))
	}

	if flagScoresLevel >= 0 {
		return nil
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Best Runs")
	fmt.Println()
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Run", "Levels", "Score", "Last Played")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "---", "------", "-----", "-----------")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8s  %-6d  %-8d  %s\n",
			i+1, shortID(r.RunID), r.Levels, r.Score, formatDate(r.LastPlay))
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", runs[0].Score)
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// shortID keeps the first block of a run UUID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
