package bot

import (
	"time"

	"github.com/iamasit07/connect4-negamax/internal/domain"
)

const (
	MinDepth     = 2
	MaxDepth     = 25
	DefaultDepth = 10
)

// search depth per difficulty
var Difficulties = map[string]int{
	"easy":   2,
	"medium": 6,
	"hard":   DefaultDepth,
}

func DepthForDifficulty(difficulty string) (int, bool) {
	depth, ok := Difficulties[difficulty]
	return depth, ok
}

type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrDepthOutOfRange Error = "search depth out of range"
	ErrNoMoves         Error = "no moves left to search"
)

// ValidateDepth checks depth against [MinDepth, MaxDepth].
func ValidateDepth(depth int) error {
	if depth < MinDepth || depth > MaxDepth {
		return ErrDepthOutOfRange
	}
	return nil
}

type Stats struct {
	Nodes int
}

type Result struct {
	Column  int
	Value   int
	Depth   int
	Nodes   int
	Elapsed time.Duration
}

// Searcher runs one search at a time and keeps the stats of the last one.
type Searcher struct {
	stats Stats
}

func NewSearcher() *Searcher {
	return &Searcher{}
}

func (s *Searcher) Stats() Stats {
	return s.stats
}

// Search picks the best column for the player to move on board.
func (s *Searcher) Search(board domain.Board, depth int) (Result, error) {
	if err := ValidateDepth(depth); err != nil {
		return Result{}, err
	}
	if board.IsFinished() || len(board.ValidMoves()) == 0 {
		return Result{}, ErrNoMoves
	}

	s.stats = Stats{}
	start := time.Now()

	value, column := s.negamax(&board, depth, -domain.MaxGameScore, domain.MaxGameScore, board.CurrentTurn.Value())

	result := Result{
		Column:  column,
		Value:   value,
		Depth:   depth,
		Nodes:   s.stats.Nodes,
		Elapsed: time.Since(start),
	}
	observeSearch(result)
	return result, nil
}
