package terminal

import (
	"fmt"
	"io"

	"github.com/iamasit07/connect4-negamax/internal/domain"
	"github.com/iamasit07/connect4-negamax/internal/service/bot"
)

const clearSequence = "\x1b[2J\x1b[1;1H"

type Display struct {
	out   io.Writer
	clear bool
}

// NewDisplay writes to out; clear controls whether the screen is wiped before
// each board.
func NewDisplay(out io.Writer, clear bool) *Display {
	return &Display{out: out, clear: clear}
}

func (d *Display) Clear() {
	if d.clear {
		fmt.Fprint(d.out, clearSequence)
	}
}

// ShowBoard redraws the board and reports whether the game is over.
func (d *Display) ShowBoard(b *domain.Board) bool {
	d.Clear()
	fmt.Fprintln(d.out, b.String())
	fmt.Fprintf(d.out, "Turn: %v\n", b.CurrentTurn)
	if b.Outcome != nil {
		fmt.Fprintln(d.out, b.Outcome.String())
		return true
	}
	return false
}

func (d *Display) ShowSearch(r bot.Result) {
	fmt.Fprintf(d.out, "%d, %d\n", r.Value, r.Column)
	fmt.Fprintf(d.out, "Nodes: %d (%v)\n", r.Nodes, r.Elapsed)
}

func (d *Display) Println(a ...any) {
	fmt.Fprintln(d.out, a...)
}
