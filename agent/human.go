package agent

import (
	"bufio"
	"fmt"
	"io"

	"goboard/game"
	"goboard/notation"

	"github.com/rs/zerolog/log"
)

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent asks for moves on out and reads coordinates such as "cd" or
// "pass" from in. End of input passes.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *humanAgent) SelectAction(state game.GameState) int {
	if err := notation.Render(a.out, state.Board()); err != nil {
		log.Warn().Err(err).Msg("failed to render board")
	}
	mask := state.InvalidActions()
	for {
		fmt.Fprintf(a.out, "%s> ", state.Turn())
		if !a.in.Scan() {
			fmt.Fprintln(a.out)
			return state.PassAction()
		}
		action, err := notation.ParseAction(a.in.Text(), state.Size())
		if err != nil {
			fmt.Fprintf(a.out, "%v\n", err)
			continue
		}
		if mask[action] {
			fmt.Fprintf(a.out, "%s is occupied\n", notation.FormatAction(action, state.Size()))
			continue
		}
		return action
	}
}
