package tictactoe

import (
	"math"
	"math/bits"
	"strings"

	"parlor/pkg/minimax"
)

const (
	_crossIdx  = 0
	_circleIdx = 1

	_fullBoard = 0b111111111
)

// horizontal, vertical and diagonal lines as bitboards
var _winningPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// Cell index, x*3 + y, so ascending order walks column a top to
// bottom, then b, then c
type move uint8

// Column letter + row digit, "a1" is the top left cell
func (m move) String() string {
	return string([]byte{'a' + byte(m)/3, '1' + byte(m)%3})
}

func parseMove(text string) (move, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) != 2 {
		return 0, false
	}

	x, y := text[0]-'a', text[1]-'1'
	if x > 2 || y > 2 {
		return 0, false
	}
	return move(x*3 + y), true
}

// The search side of the game. X is the maximizer and always moves first.
type position struct {
	bitboards [2]uint16
	crossTurn bool
}

var _ minimax.StateLike[position, move] = position{}

func startPosition() position {
	return position{crossTurn: true}
}

func hasLine(bb uint16) bool {
	for _, pattern := range _winningPatterns {
		if bb&pattern == pattern {
			return true
		}
	}
	return false
}

func (p position) crossWon() bool  { return hasLine(p.bitboards[_crossIdx]) }
func (p position) circleWon() bool { return hasLine(p.bitboards[_circleIdx]) }

func (p position) full() bool {
	return p.bitboards[_crossIdx]|p.bitboards[_circleIdx] == _fullBoard
}

func (p position) free(m move) bool {
	return (p.bitboards[_crossIdx]|p.bitboards[_circleIdx])&(1<<m) == 0
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
	default:
		return 0
	}
}

func (p position) CurrentPlayer() minimax.Player {
	return minimax.Player(p.crossTurn)
}

func (p position) Actions() []move {
	if p.IsTerminal() {
		return nil
	}

	moves := make([]move, 0, 9)
	free := uint(_fullBoard ^ (p.bitboards[_crossIdx] | p.bitboards[_circleIdx]))
	for free != 0 {
		moves = append(moves, move(bits.TrailingZeros(free)))
		free &= free - 1
	}
	return moves
}

// The receiver is a copy already, so marking the cell on it is pure
func (p position) Result(m move) position {
	if !p.free(m) {
		panic("[tictactoe] Result: cell " + m.String() + " is occupied")
	}

	idx := _crossIdx
	if !p.crossTurn {
		idx = _circleIdx
	}
	p.bitboards[idx] |= 1 << m
	p.crossTurn = !p.crossTurn
	return p
}
