package game

// snapshot pairs a board with its hash so lookups can skip most cell
// comparisons.
type snapshot struct {
	board Board
	hash  uint64
}

// history is the window of the most recent boards, oldest first. It always
// holds exactly its capacity; a fresh game is padded with empty boards.
type history struct {
	frames []snapshot
}

func newHistory(capacity int, initial Board) history {
	s := snapshot{board: initial, hash: initial.Hash()}
	frames := make([]snapshot, capacity)
	for i := range frames {
		frames[i] = s
	}
	return history{frames: frames}
}

// push returns a new window with b appended and the oldest board evicted.
func (h history) push(b Board) history {
	frames := make([]snapshot, len(h.frames))
	copy(frames, h.frames[1:])
	frames[len(frames)-1] = snapshot{board: b, hash: b.Hash()}
	return history{frames: frames}
}

func (h history) contains(b Board) bool {
	hash := b.Hash()
	for _, s := range h.frames {
		if s.hash == hash && s.board.Equal(b) {
			return true
		}
	}
	return false
}

func (h history) len() int { return len(h.frames) }

func (h history) board(i int) Board { return h.frames[i].board }
