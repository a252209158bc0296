package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4-negamax/internal/domain"
	"github.com/iamasit07/connect4-negamax/internal/service/bot"
)

const (
	msgOutOfRange   = "Out of range! Try again."
	msgInvalidInput = "Invalid input! Try again."
	msgFilledSlot   = "That slot is full! Try again!"
)

// Prompt reads bounded integers line by line.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewScanner(in), out: out}
}

// ReadInt asks until a number in [lower, upper] is entered.
// It returns io.EOF once the input is exhausted.
func (p *Prompt) ReadInt(message string, lower, upper int) (int, error) {
	for {
		fmt.Fprint(p.out, message)

		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}

		num, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil {
			fmt.Fprintln(p.out, msgInvalidInput)
			continue
		}
		if num < lower || num > upper {
			fmt.Fprintln(p.out, msgOutOfRange)
			continue
		}
		return num, nil
	}
}

func (p *Prompt) ReadColumn() (int, error) {
	return p.ReadInt("Enter column: ", 1, domain.Columns)
}

func (p *Prompt) ReadDepth() (int, error) {
	message := fmt.Sprintf("Enter the depth for minimax with α/β pruning (%d recommended): ", bot.DefaultDepth)
	return p.ReadInt(message, bot.MinDepth, bot.MaxDepth)
}

// FilledSlot tells the player to pick another column.
func (p *Prompt) FilledSlot() {
	fmt.Fprintln(p.out, msgFilledSlot)
}
