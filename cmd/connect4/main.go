package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iamasit07/connect4-negamax/internal/config"
)

var (
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "connect4",
		Short: "Play Connect Four against a negamax bot",
		Long: `connect4 plays Connect Four on a 7x6 grid in the terminal against a bot
that searches the game tree with negamax and alpha-beta pruning.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				if err := godotenv.Load("../.env"); err != nil {
					log.Println("No .env file found")
				}
			}
			cfg = config.LoadConfig()
		},
	}
)

func init() {
	rootCmd.AddCommand(playCmd, historyCmd, pruneCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
