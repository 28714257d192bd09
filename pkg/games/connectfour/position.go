package connectfour

import (
	"math"
	"math/bits"
	"strings"

	"parlor/pkg/minimax"
)

const (
	_crossIdx  = 0
	_circleIdx = 1

	_columns = 7
	_rows    = 6
)

// Each column takes 7 bits, the 6 playable rows plus a sentinel row on
// top that stays empty and keeps the shifted win checks from bleeding
// into the next column. Row 0 is the bottom of a column.
const (
	_columnMask   uint64 = 0b0111111
	_playableMask uint64 = 0b0111111_0111111_0111111_0111111_0111111_0111111_0111111
	_centerMask   uint64 = _columnMask << (3 * 7)
)

// Column index, 0 through 6
type move uint8

// Columns are numbered 1 through 7 left to right
func (m move) String() string {
	return string('1' + byte(m))
}

func parseMove(text string) (move, bool) {
	text = strings.TrimSpace(text)
	if len(text) != 1 || text[0] < '1' || text[0] > '7' {
		return 0, false
	}
	return move(text[0] - '1'), true
}

// Columns closest to the middle first, they join the most winning
// windows and tend to cause the earliest cutoffs
var _searchOrder = [...]move{3, 2, 4, 1, 5, 0, 6}

// Every four-cell window that can decide the game, as bitboard masks
var _windows = makeWindows()

// Window value by the number of own discs in it, given the opponent
// holds none of its cells
var _windowScores = [4]minimax.Value{0, 1, 10, 50}

func makeWindows() []uint64 {
	bit := func(col, row int) uint64 {
		return 1 << uint(col*7+row)
	}

	windows := make([]uint64, 0, 69)
	for col := 0; col < _columns; col++ {
		for row := 0; row < _rows; row++ {
			if row+3 < _rows {
				windows = append(windows, bit(col, row)|bit(col, row+1)|bit(col, row+2)|bit(col, row+3))
			}
			if col+3 < _columns {
				windows = append(windows, bit(col, row)|bit(col+1, row)|bit(col+2, row)|bit(col+3, row))
			}
			if col+3 < _columns && row+3 < _rows {
				windows = append(windows, bit(col, row)|bit(col+1, row+1)|bit(col+2, row+2)|bit(col+3, row+3))
			}
			if col+3 < _columns && row-3 >= 0 {
				windows = append(windows, bit(col, row)|bit(col+1, row-1)|bit(col+2, row-2)|bit(col+3, row-3))
			}
		}
	}
	return windows
}

// The search side of the game. X is the maximizer and always moves first.
type position struct {
	bitboards [2]uint64
	crossTurn bool
}

var _ minimax.StateLike[position, move] = position{}

func startPosition() position {
	return position{crossTurn: true}
}

// Shift pairs: 1 vertical, 7 horizontal, 6 and 8 the two diagonals
func hasFour(bb uint64) bool {
	for _, shift := range []uint{1, 6, 7, 8} {
		m := bb & (bb >> shift)
		if m&(m>>(2*shift)) != 0 {
			return true
		}
	}
	return false
}

func (p position) crossWon() bool  { return hasFour(p.bitboards[_crossIdx]) }
func (p position) circleWon() bool { return hasFour(p.bitboards[_circleIdx]) }

func (p position) occupancy() uint64 {
	return p.bitboards[_crossIdx] | p.bitboards[_circleIdx]
}

func (p position) full() bool {
	return p.occupancy() == _playableMask
}

// Discs stack without gaps, so the fill count of a column is also the
// row the next disc lands on
func (p position) height(m move) int {
	return bits.OnesCount64(p.occupancy() >> (uint(m) * 7) & _columnMask)
}

func (p position) IsTerminal() bool {
	return p.full() || p.crossWon() || p.circleWon()
}

func (p position) HeuristicValue() minimax.Value {
	switch {
	case p.crossWon():
		return minimax.Value(math.Inf(1))
	case p.circleWon():
		return minimax.Value(math.Inf(-1))
	case p.full():
		return 0
	}

	value := minimax.Value(0)
	for _, window := range _windows {
		cross := bits.OnesCount64(p.bitboards[_crossIdx] & window)
		circle := bits.OnesCount64(p.bitboards[_circleIdx] & window)
		switch {
		case circle == 0:
			value += _windowScores[cross]
		case cross == 0:
			value -= _windowScores[circle]
		}
	}

	value += minimax.Value(3 * bits.OnesCount64(p.bitboards[_crossIdx]&_centerMask))
	value -= minimax.Value(3 * bits.OnesCount64(p.bitboards[_circleIdx]&_centerMask))
	return value
}

func (p position) CurrentPlayer() minimax.Player {
	return minimax.Player(p.crossTurn)
}

func (p position) Actions() []move {
	if p.IsTerminal() {
		return nil
	}

	moves := make([]move, 0, _columns)
	for _, m := range _searchOrder {
		if p.height(m) < _rows {
			moves = append(moves, m)
		}
	}
	return moves
}

// The receiver is a copy already, so dropping the disc on it is pure
func (p position) Result(m move) position {
	row := p.height(m)
	if row >= _rows {
		panic("[connectfour] Result: column " + m.String() + " is full")
	}

	idx := _crossIdx
	if !p.crossTurn {
		idx = _circleIdx
	}
	p.bitboards[idx] |= 1 << (uint(m)*7 + uint(row))
	p.crossTurn = !p.crossTurn
	return p
}
