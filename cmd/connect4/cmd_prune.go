package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamasit07/connect4-negamax/internal/repository/postgres"
	"github.com/iamasit07/connect4-negamax/internal/service/cleanup"
)

var (
	pruneDays int

	pruneCmd = &cobra.Command{
		Use:   "prune",
		Short: "Delete archived games older than --days",
		Args:  cobra.NoArgs,
		RunE:  runPrune,
	}
)

func init() {
	pruneCmd.Flags().IntVar(&pruneDays, "days", 30, "keep games finished within this many days")
}

func runPrune(cmd *cobra.Command, args []string) error {
	if pruneDays < 1 {
		return fmt.Errorf("--days must be at least 1")
	}

	db, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := cleanup.NewWorker(postgres.NewGameRepo(db), pruneDays).RunCleanup(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d games\n", n)
	return nil
}
