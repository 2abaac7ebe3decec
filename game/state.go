package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"goboard/dsu"
	"goboard/utils"

	"github.com/pkg/errors"
)

type StateHash uint64

// GameState is one position of a game together with everything needed to
// continue it. It is a value: Step returns a new GameState and leaves the
// receiver untouched, so independent games can be stepped concurrently.
type GameState struct {
	conf     Config
	board    Board
	turn     Color // player to move; frozen once the game is done
	prevPass bool
	count    int // moves played
	done     bool
	invalid  bool // the last step was an illegal move
	forfeit  bool // the game ended on an illegal move
	groups   dsu.DSU
	recent   history
}

// New returns the initial state of a game on a size×size board. It panics on
// an invalid configuration; use NewFromConfig for unchecked input.
func New(size int, options ...Option) GameState {
	gs, err := NewFromConfig(NewConfig(size, options...))
	if err != nil {
		panic(fmt.Sprintf("invalid game config: %v", err))
	}
	return gs
}

func NewFromConfig(conf Config) (GameState, error) {
	if err := conf.Validate(); err != nil {
		return GameState{}, err
	}
	board := NewBoard(conf.Size)
	return GameState{
		conf:   conf,
		board:  board,
		turn:   Black,
		groups: dsu.New(conf.Size * conf.Size),
		recent: newHistory(conf.History, board),
	}, nil
}

// Reset returns the initial state for the same configuration.
func (gs GameState) Reset() GameState {
	return New(gs.conf.Size, gs.options()...)
}

func (gs GameState) options() []Option {
	options := []Option{WithKomi(gs.conf.Komi), WithHistory(gs.conf.History)}
	if gs.conf.ClampActions {
		options = append(options, WithActionClamping())
	}
	return options
}

func (gs GameState) Config() Config  { return gs.conf }
func (gs GameState) Size() int       { return gs.conf.Size }
func (gs GameState) Komi() float32   { return gs.conf.Komi }
func (gs GameState) HistoryLen() int { return gs.conf.History }
func (gs GameState) NumActions() int { return gs.conf.NumActions() }
func (gs GameState) PassAction() int { return gs.conf.PassAction() }
func (gs GameState) MaxSteps() int   { return gs.conf.MaxSteps() }
func (gs GameState) Board() Board    { return gs.board }
func (gs GameState) Turn() Color     { return gs.turn }
func (gs GameState) PrevPass() bool  { return gs.prevPass }
func (gs GameState) MoveCount() int  { return gs.count }
func (gs GameState) Done() bool      { return gs.done }
func (gs GameState) Invalid() bool   { return gs.invalid }
func (gs GameState) Groups() dsu.DSU { return gs.groups.Clone() }
func (gs GameState) Player() Color   { return gs.turn }

// Recent returns the i-th board of the history window, oldest first.
func (gs GameState) Recent(i int) Board { return gs.recent.board(i) }

// Step plays action for the player to move. Actions in [0, N²) place a stone
// at (action/N, action%N) and N² passes. Illegal moves (occupied cell,
// self-capture, a board repeated within the history window) end the game with
// reward -1. Otherwise the reward is 0 until the game ends, then ±1 by the
// sign of the mover's area score.
//
// Out-of-range actions return an error wrapping ErrInvalidAction and the
// unchanged state, unless the game was configured WithActionClamping, which
// moves them onto the nearest board cell.
func (gs GameState) Step(action int) (GameState, float32, error) {
	gs.check()

	pass := gs.conf.PassAction()
	if action < 0 || action > pass {
		if !gs.conf.ClampActions {
			return gs, 0, errors.Wrapf(ErrInvalidAction, "action %d outside [0, %d]", action, pass)
		}
		// Only N² itself passes; anything else lands on a board cell.
		action = clamp(action, pass)
	}
	isPass := action == pass

	// A pass never changes stones, and is always legal.
	board, groups, invalid := gs.board, gs.groups, false
	if !isPass {
		board, groups, invalid = gs.place(action)
	}

	count := gs.count + 1
	done := gs.done || invalid || (gs.prevPass && isPass) || count >= gs.conf.MaxSteps()

	score := gs.FinalScore(board, gs.turn)
	var reward float32
	if done {
		if score > 0 {
			reward = 1
		} else {
			reward = -1
		}
	}
	if invalid {
		reward = -1
	}

	next := gs
	next.board = board
	next.groups = groups
	if !done {
		next.turn = gs.turn.Opponent()
	}
	next.prevPass = isPass
	next.count = count
	next.done = done
	next.invalid = invalid
	next.forfeit = gs.forfeit || (!gs.done && invalid)
	next.recent = gs.recent.push(board)
	return next, reward, nil
}

// place puts a stone of the player to move at action on copies of the board
// and tracker, resolves captures, and reports whether the move is illegal.
// An illegal move still yields the resulting board; the game ends on it.
func (gs GameState) place(action int) (Board, dsu.DSU, bool) {
	n := gs.conf.Size
	invalid := gs.board.cells[action] != Empty

	board := gs.board.clone()
	board.cells[action] = gs.turn
	groups := gs.groups.Clone()

	// Off-board neighbors are clamped onto the edge, so edge cells list
	// themselves.
	i, j := action/n, action%n
	neighbors := [4]int{
		clamp(i-1, n)*n + j,
		clamp(i+1, n)*n + j,
		i*n + clamp(j-1, n),
		i*n + clamp(j+1, n),
	}
	for _, nb := range neighbors {
		if board.cells[nb] == board.cells[action] {
			groups.Union(action, nb)
		}
	}
	roots := groups.FindAllRoots()

	opponent := gs.turn.Opponent()
	for _, nb := range neighbors {
		if board.cells[nb] == opponent {
			board.removeIfDead(roots, nb)
		}
	}

	// Self-capture is checked after opponent captures freed their liberties.
	board.removeIfDead(roots, action)
	invalid = invalid || board.cells[action] == Empty

	empty := make([]bool, len(board.cells))
	for k, v := range board.cells {
		empty[k] = v == Empty
	}
	groups.ResetWhere(empty)

	if gs.recent.contains(board) {
		invalid = true
	}
	return board, groups, invalid
}

func clamp(x, n int) int {
	return min(max(x, 0), n-1)
}

// removeIfDead clears the region sharing at's root when no cell of it touches
// an empty cell. Only call it on a board that has not been published yet.
func (b Board) removeIfDead(roots []int, at int) {
	root := roots[at]
	for k, r := range roots {
		if r == root && b.hasLiberty(k) {
			return
		}
	}
	for k, r := range roots {
		if r == root {
			b.cells[k] = Empty
		}
	}
}

// hasLiberty reports whether an on-board orthogonal neighbor of i is empty.
func (b Board) hasLiberty(i int) bool {
	n := b.size
	r, c := i/n, i%n
	return (r > 0 && b.cells[i-n] == Empty) ||
		(r < n-1 && b.cells[i+n] == Empty) ||
		(c > 0 && b.cells[i-1] == Empty) ||
		(c < n-1 && b.cells[i+1] == Empty)
}

// InvalidActions marks occupied cells. PASS, the last entry, is always
// allowed. Suicide and repetition are only detected by Step.
func (gs GameState) InvalidActions() []bool {
	mask := make([]bool, gs.conf.NumActions())
	for i, v := range gs.board.cells {
		mask[i] = v != Empty
	}
	return mask
}

// LegalActions lists the actions the InvalidActions mask allows, PASS last.
func (gs GameState) LegalActions() []int {
	return utils.FindIndices(gs.InvalidActions(), false)
}

// Winner is Empty while the game runs. A game ended by an illegal move is won
// by the opponent of the player who made it; otherwise black wins with a
// positive area score.
func (gs GameState) Winner() Color {
	switch {
	case !gs.done:
		return Empty
	case gs.forfeit:
		return gs.turn.Opponent()
	case gs.FinalScore(gs.board, Black) > 0:
		return Black
	default:
		return White
	}
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, gs.board.Hash())
	binary.Write(hasher, binary.LittleEndian, int64(gs.turn))
	binary.Write(hasher, binary.LittleEndian, gs.prevPass)
	binary.Write(hasher, binary.LittleEndian, int64(gs.count))
	binary.Write(hasher, binary.LittleEndian, gs.done)
	return StateHash(hasher.Sum64())
}

// check panics when the state's parts disagree about the board size; that is
// a programming error, never a rule violation.
func (gs GameState) check() {
	n := gs.conf.Size
	if gs.board.size != n || len(gs.board.cells) != n*n {
		panic(fmt.Sprintf("game: board is %dx%d with %d cells, want %dx%d", gs.board.size, gs.board.size, len(gs.board.cells), n, n))
	}
	if gs.groups.Len() != n*n {
		panic(fmt.Sprintf("game: group tracker covers %d cells, want %d", gs.groups.Len(), n*n))
	}
	if gs.recent.len() != gs.conf.History {
		panic(fmt.Sprintf("game: history holds %d boards, want %d", gs.recent.len(), gs.conf.History))
	}
}
