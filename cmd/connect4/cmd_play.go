package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/iamasit07/connect4-negamax/internal/config"
	"github.com/iamasit07/connect4-negamax/internal/domain"
	"github.com/iamasit07/connect4-negamax/internal/service/bot"
	"github.com/iamasit07/connect4-negamax/internal/service/game"
	"github.com/iamasit07/connect4-negamax/internal/transport/terminal"
)

var (
	playDepth      int
	playDifficulty string
	playResume     string
	playAIVsAI     bool
	playSecond     bool
	playDelay      time.Duration
	playNoClear    bool

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play a game against the bot",
		Long: `Play a game in the terminal. You play ■ and move first unless --second is
given; the bot answers after each of your moves.`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}
)

func init() {
	playCmd.Flags().IntVar(&playDepth, "depth", 0, fmt.Sprintf("search depth (%d-%d), asked for when not set", bot.MinDepth, bot.MaxDepth))
	playCmd.Flags().StringVar(&playDifficulty, "difficulty", "", "easy, medium or hard instead of --depth")
	playCmd.Flags().StringVar(&playResume, "resume", "", "resume a saved game by id")
	playCmd.Flags().BoolVar(&playAIVsAI, "ai-vs-ai", false, "let the bot play both sides")
	playCmd.Flags().BoolVar(&playSecond, "second", false, "let the bot move first")
	playCmd.Flags().DurationVar(&playDelay, "delay", -1, "pause before each bot move (default BOT_DELAY_MS)")
	playCmd.Flags().BoolVar(&playNoClear, "no-clear", false, "do not clear the screen between moves")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	startMetrics(cfg.MetricsAddr)
	svc, closeStores := newService(ctx, cfg)
	defer closeStores()

	out := cmd.OutOrStdout()
	prompt := terminal.NewPrompt(cmd.InOrStdin(), out)
	display := terminal.NewDisplay(out, !playNoClear)

	session, err := openSession(ctx, svc, prompt)
	if err != nil {
		return err
	}

	delay := playDelay
	if delay < 0 {
		delay = cfg.BotDelay
	}

	return playLoop(ctx, svc, session, prompt, display, delay)
}

func openSession(ctx context.Context, svc *game.Service, prompt *terminal.Prompt) (*game.Session, error) {
	if playResume != "" {
		return svc.Resume(ctx, playResume)
	}

	depth, err := resolveDepth(cfg, prompt)
	if err != nil {
		return nil, err
	}

	human := domain.First
	switch {
	case playAIVsAI:
		human = domain.Empty
	case playSecond:
		human = domain.Second
	}
	return svc.Start(depth, human)
}

// resolveDepth prefers --depth, then a difficulty, then SEARCH_DEPTH and
// finally asks on the prompt.
func resolveDepth(cfg *config.Config, prompt *terminal.Prompt) (int, error) {
	if playDepth != 0 {
		return playDepth, bot.ValidateDepth(playDepth)
	}

	difficulty := playDifficulty
	if difficulty == "" {
		difficulty = cfg.BotDifficulty
	}
	if difficulty != "" {
		depth, ok := bot.DepthForDifficulty(difficulty)
		if !ok {
			return 0, fmt.Errorf("unknown difficulty %q", difficulty)
		}
		return depth, nil
	}

	if cfg.SearchDepth != 0 {
		return cfg.SearchDepth, bot.ValidateDepth(cfg.SearchDepth)
	}
	return prompt.ReadDepth()
}

func playLoop(ctx context.Context, svc *game.Service, session *game.Session, prompt *terminal.Prompt, display *terminal.Display, delay time.Duration) error {
	display.ShowBoard(&session.Board)
	display.Println("Game:", session.GameID)

	for !session.IsFinished() {
		if session.IsBotTurn() {
			select {
			case <-ctx.Done():
				return suspend(svc, session)
			case <-time.After(delay):
			}

			result, err := session.PlayBot()
			if err != nil {
				return err
			}
			display.ShowBoard(&session.Board)
			display.ShowSearch(result)
		} else {
			column, err := prompt.ReadColumn()
			if errors.Is(err, io.EOF) {
				return suspend(svc, session)
			}
			if err != nil {
				return err
			}

			err = session.PlayHuman(column)
			if errors.Is(err, domain.ErrFilledSlot) {
				prompt.FilledSlot()
				continue
			}
			if err != nil {
				return err
			}
			display.ShowBoard(&session.Board)
		}

		svc.Checkpoint(ctx, session)
	}

	return nil
}

func suspend(svc *game.Service, session *game.Session) error {
	if svc.Snapshots == nil {
		log.Printf("[GAME] Game %s abandoned after %d moves", session.GameID, len(session.Moves))
		return nil
	}
	log.Printf("[GAME] Game %s suspended after %d moves, continue with --resume %s",
		session.GameID, len(session.Moves), session.GameID)
	return nil
}
