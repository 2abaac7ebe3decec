package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Board is an N×N grid stored row-major. A published Board is never written
// again: every transition builds a fresh cell slice, so boards can be shared
// freely between states.
type Board struct {
	size  int
	cells []Color
}

// NewBoard returns an empty board.
func NewBoard(size int) Board {
	return Board{size: size, cells: make([]Color, size*size)}
}

// BoardFromRows builds a board from a square grid of colors.
func BoardFromRows(rows [][]Color) (Board, error) {
	n := len(rows)
	b := NewBoard(n)
	for r, row := range rows {
		if len(row) != n {
			return Board{}, fmt.Errorf("row %d has %d cells, want %d", r, len(row), n)
		}
		for c, v := range row {
			if v != Empty && v != Black && v != White {
				return Board{}, fmt.Errorf("row %d col %d holds unknown color %d", r, c, v)
			}
			b.cells[r*n+c] = v
		}
	}
	return b, nil
}

func (b Board) Size() int             { return b.size }
func (b Board) At(row, col int) Color { return b.cells[row*b.size+col] }
func (b Board) AtIndex(i int) Color   { return b.cells[i] }

// Cells returns a copy of the row-major cells.
func (b Board) Cells() []Color {
	out := make([]Color, len(b.cells))
	copy(out, b.cells)
	return out
}

// Rows returns a copy of the board as a 2-D grid.
func (b Board) Rows() [][]Color {
	rows := make([][]Color, b.size)
	for r := range rows {
		rows[r] = make([]Color, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

// Count returns the number of cells holding c.
func (b Board) Count(c Color) int {
	count := 0
	for _, v := range b.cells {
		if v == c {
			count++
		}
	}
	return count
}

func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

func (b Board) Hash() uint64 {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(b.size))
	for _, v := range b.cells {
		hasher.Write([]byte{byte(v)})
	}
	return hasher.Sum64()
}

func (b Board) clone() Board {
	return Board{size: b.size, cells: b.Cells()}
}

func (b Board) String() string {
	buf := make([]byte, 0, (b.size+1)*b.size)
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			switch b.At(r, c) {
			case Black:
				buf = append(buf, 'X')
			case White:
				buf = append(buf, 'O')
			default:
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
