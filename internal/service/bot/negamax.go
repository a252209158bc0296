package bot

import (
	"fmt"

	"github.com/iamasit07/connect4-negamax/internal/domain"
)

// placeholder column reported by leaves, callers never play it
const leafMove = 1

// Negamax searches board to the given depth and returns the value from the
// perspective of the player to move (color is +1 for First, -1 for Second)
// together with the column that reaches it.
func Negamax(board domain.Board, depth, alpha, beta, color int) (int, int) {
	var s Searcher
	return s.negamax(&board, depth, alpha, beta, color)
}

func (s *Searcher) negamax(node *domain.Board, depth, alpha, beta, color int) (int, int) {
	s.stats.Nodes++

	if depth == 0 || node.IsFinished() {
		return node.TotalScore() * color, leafMove
	}

	moves := node.ValidMoves()
	value := -domain.MaxGameScore + 1
	bestMove := moves[0]

	for _, column := range moves {
		child := *node
		if err := child.Insert(column); err != nil {
			panic(fmt.Sprintf("bot: column %d from ValidMoves rejected: %v", column, err))
		}

		score, _ := s.negamax(&child, depth-1, -beta, -alpha, -color)
		value = max(value, -score)

		// best move follows alpha, not the running best value
		if value > alpha {
			alpha = value
			bestMove = column
		}

		if alpha >= beta {
			break // cutoff
		}
	}

	return value, bestMove
}
