// Package notation converts between integer actions and the two-letter
// coordinates typed by people, and renders boards as text.
package notation

import (
	"fmt"
	"io"
	"strings"

	"goboard/game"

	"github.com/pkg/errors"
)

const Pass = "pass"

var ErrBadCoordinate = errors.New("bad coordinate")

// ParseAction reads "pass" or two letters "<row><col>", both counted from 'a'.
// Case is ignored.
func ParseAction(s string, size int) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == Pass {
		return size * size, nil
	}
	if len(s) != 2 {
		return 0, errors.Wrapf(ErrBadCoordinate, "%q: want two letters or %q", s, Pass)
	}
	row, col := int(s[0])-'a', int(s[1])-'a'
	if row < 0 || row >= size || col < 0 || col >= size {
		return 0, errors.Wrapf(ErrBadCoordinate, "%q is off a %dx%d board", s, size, size)
	}
	return row*size + col, nil
}

// FormatAction is the inverse of ParseAction.
func FormatAction(action, size int) string {
	if action == size*size {
		return Pass
	}
	return string([]byte{byte('a' + action/size), byte('a' + action%size)})
}

// Render writes the board with a lettered header; X is black, O is white.
func Render(w io.Writer, b game.Board) error {
	var sb strings.Builder
	sb.WriteString("  ")
	for c := 0; c < b.Size(); c++ {
		fmt.Fprintf(&sb, "%c ", 'a'+c)
	}
	sb.WriteString("\n")
	for r := 0; r < b.Size(); r++ {
		fmt.Fprintf(&sb, "%c ", 'a'+r)
		for c := 0; c < b.Size(); c++ {
			sb.WriteString(symbol(b.At(r, c)))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func symbol(c game.Color) string {
	switch c {
	case game.Black:
		return "X"
	case game.White:
		return "O"
	case game.Empty:
		return "."
	}
	panic(fmt.Sprintf("unexpected cell value %d", c))
}
