package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iamasit07/connect4-negamax/internal/domain"
	"github.com/iamasit07/connect4-negamax/internal/repository/postgres"
)

var (
	historyLimit int

	historyCmd = &cobra.Command{
		Use:   "history [game-id]",
		Short: "List archived games or replay one of them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHistory,
	}
)

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of games to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := postgres.NewGameRepo(db)
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		rec, err := repo.GetGameByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("game %s not found", args[0])
		}

		board, err := rec.Board()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, board.String())
		if board.Outcome != nil {
			fmt.Fprintln(out, board.Outcome.String())
		}
		fmt.Fprintf(out, "Moves: %v\n", rec.Moves)
		return nil
	}

	games, err := repo.ListRecentGames(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GAME\tRESULT\tMOVES\tDEPTH\tFINISHED")
	for _, g := range games {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", g.GameID, describeResult(g), len(g.Moves), g.Depth, g.FinishedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func describeResult(rec domain.GameRecord) string {
	switch rec.Status {
	case domain.StatusWon:
		if rec.HumanPiece == domain.Empty {
			return "won by " + rec.Winner.String()
		}
		if rec.Winner == rec.HumanPiece {
			return "human won"
		}
		return "bot won"
	case domain.StatusDraw:
		return "draw"
	}
	return string(rec.Status)
}
