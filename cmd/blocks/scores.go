package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode, or a summary of every mode when
no mode is given. Only finished standard games are recorded.

Examples:
  blocks scores
  blocks scores standard
  blocks scores standard --recent
  blocks scores standard --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Order by date instead of score")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a mode")
		}
		return printSummary(store)
	}

	gameID, err := modeID(args[0])
	if err != nil {
		return err
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	return printScores(store, gameID, game.Title())
}

func printScores(store *storage.Store, gameID, title string) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if flagScoresRecent {
		scores, err = store.RecentScores(gameID, flagScoresLimit)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Finish a game of 'blocks play standard' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %10s  %5s  %5s  %s\n", "Rank", "Player", "Score", "Lines", "Level", "When")
	fmt.Printf("  %-4s  %-12s  %10s  %5s  %5s  %s\n", "----", "------", "-----", "-----", "-----", "----")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12.12s  %10s  %5d  %5d  %s\n",
			i+1, player, humanize.Comma(int64(e.Score)), e.Lines, e.Level, humanize.Time(e.CreatedAt))
	}

	if best, err := store.HighScore(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %s\n", humanize.Comma(int64(best)))
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Println("Score summary")
	fmt.Println()
	fmt.Printf("  %-18s  %6s  %10s  %10s  %8s  %s\n", "Mode", "Games", "Best", "Average", "Lines", "Last played")
	fmt.Printf("  %-18s  %6s  %10s  %10s  %8s  %s\n", "----", "-----", "----", "-------", "-----", "-----------")

	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-18s  %6d  %10s  %10s  %8s  %s\n", g.Title, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Printf("  %-18s  %6s  %10s  %10s  %8s  %s\n",
			g.Title,
			humanize.Comma(int64(s.GamesCount)),
			humanize.Comma(int64(s.HighScore)),
			humanize.Commaf(float64(int64(s.AvgScore))),
			humanize.Comma(s.TotalLines),
			humanize.Time(s.LastPlayed),
		)
	}
	return nil
}
