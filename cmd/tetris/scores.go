package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top scores for a variant, or a summary of every
variant when none is given.

Examples:
  tetris scores
  tetris scores tetris
  tetris scores pentris --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) > 0 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		err = printSummary(out, store, time.Now())
	} else {
		err = printTopScores(out, store, args[0], flagLimit, time.Now())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printTopScores(w io.Writer, store *storage.Store, gameID string, limit int, now time.Time) error {
	title := gameID
	if game, err := registry.Create(gameID); err == nil {
		title = game.Title()
	}

	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'tetris play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %10s  %5s  %5s  %7s  %s\n", "Rank", "Score", "Level", "Lines", "Time", "When")
	fmt.Fprintf(w, "  %-4s  %10s  %5s  %5s  %7s  %s\n", "----", "-----", "-----", "-----", "----", "----")
	for i, e := range scores {
		fmt.Fprintf(w, "  %-4s  %10s  %5d  %5d  %7s  %s\n",
			humanize.Ordinal(i+1),
			humanize.Comma(int64(e.Score)),
			e.Level,
			e.Lines,
			e.Duration.Round(time.Second),
			humanize.RelTime(e.CreatedAt, now, "ago", "from now"),
		)
	}
	return nil
}

func printSummary(w io.Writer, store *storage.Store, now time.Time) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Score summary")
	fmt.Fprintln(w)
	games := registry.List()
	for _, g := range games {
		s, ok := stats[g.ID]
		if !ok || s.GamesCount == 0 {
			fmt.Fprintf(w, "  %-10s  no games yet\n", g.Title)
			continue
		}
		fmt.Fprintf(w, "  %-10s  %s games, best %s, avg %s, best level %d, %s lines, played %s, last %s\n",
			g.Title,
			humanize.Comma(int64(s.GamesCount)),
			humanize.Comma(int64(s.HighScore)),
			humanize.CommafWithDigits(s.AvgScore, 0),
			s.BestLevel,
			humanize.Comma(s.TotalLines),
			s.PlayTime.Round(time.Second),
			humanize.RelTime(s.LastPlayed, now, "ago", "from now"),
		)
	}
	return nil
}
