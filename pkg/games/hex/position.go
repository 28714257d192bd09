package hex

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"parlor/pkg/minimax"
)

const (
	_size  = 11
	_cells = _size * _size

	_empty  uint8 = 0
	_cross  uint8 = 1
	_circle uint8 = 2
)

// Cell index, row*11 + column with row 0 at the top. X connects top to
// bottom, O connects left to right.
type move uint8

// Column letter + row number, "A1" is the top left cell
func (m move) String() string {
	return string('A'+byte(m)%_size) + strconv.Itoa(int(m)/_size+1)
}

func parseMove(text string) (move, bool) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if len(text) < 2 || len(text) > 3 {
		return 0, false
	}

	col := text[0] - 'A'
	row, err := strconv.Atoi(text[1:])
	if err != nil || col >= _size || row < 1 || row > _size {
		return 0, false
	}
	return move((row-1)*_size + int(col)), true
}

// The six neighbours of a cell on the rhombus grid
var _neighbours = [6][2]int{
	{-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0},
}

// Cells closest to the middle first, the centre dominates hex openings
var _searchOrder = makeSearchOrder()

func makeSearchOrder() [_cells]move {
	var order [_cells]move
	for i := range order {
		order[i] = move(i)
	}

	distance := func(m move) int {
		row, col := int(m)/_size-_size/2, int(m)%_size-_size/2
		if (row < 0) == (col < 0) {
			return abs(row) + abs(col)
		}
		return max(abs(row), abs(col))
	}
	sort.SliceStable(order[:], func(i, j int) bool {
		return distance(order[i]) < distance(order[j])
	})
	return order
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// The search side of the game. X is the maximizer and always moves first.
type position struct {
	cells     [_cells]uint8
	crossTurn bool
}

var _ minimax.StateLike[position, move] = position{}

func startPosition() position {
	return position{crossTurn: true}
}

const _unreached = math.MaxInt32

// linkCost runs a 0/1 breadth first search from one of the owner's board
// edges to the opposite one. Own stones cost nothing to cross, empty
// cells cost one and the opponent's stones are walls, so the result is
// the number of stones a winning chain still needs. Zero means the chain
// is complete.
func (p position) linkCost(owner uint8) int {
	var dist [_cells]int
	for i := range dist {
		dist[i] = _unreached
	}

	// curr holds the frontier at the current cost, next at cost plus one
	var curr, next []int
	seed := func(idx int) {
		switch p.cells[idx] {
		case owner:
			dist[idx] = 0
			curr = append(curr, idx)
		case _empty:
			dist[idx] = 1
			next = append(next, idx)
		}
	}
	for i := 0; i < _size; i++ {
		if owner == _cross {
			seed(i)
		} else {
			seed(i * _size)
		}
	}

	for len(curr) > 0 || len(next) > 0 {
		if len(curr) == 0 {
			curr, next = next, nil
		}
		idx := curr[len(curr)-1]
		curr = curr[:len(curr)-1]

		row, col := idx/_size, idx%_size
		for _, n := range _neighbours {
			r, c := row+n[0], col+n[1]
			if r < 0 || r >= _size || c < 0 || c >= _size {
				continue
			}

			nidx := r*_size + c
			cost := dist[idx]
			switch p.cells[nidx] {
			case _empty:
				cost++
			case owner:
			default:
				continue
			}
			if cost < dist[nidx] {
				dist[nidx] = cost
				if cost == dist[idx] {
					curr = append(curr, nidx)
				} else {
					next = append(next, nidx)
				}
			}
		}
	}

	best := _unreached
	for i := 0; i < _size; i++ {
		goal := i*_size + _size - 1
		if owner == _cross {
			goal = (_size-1)*_size + i
		}
		best = min(best, dist[goal])
	}
	return best
}

func (p position) crossWon() bool  { return p.linkCost(_cross) == 0 }
func (p position) circleWon() bool { return p.linkCost(_circle) == 0 }

// A full board always contains exactly one complete chain, so the win
// checks double as the terminal test and there is no draw
func (p position) IsTerminal() bool {
	return p.crossWon() || p.circleWon()
}

func (p position) HeuristicValue() minimax.Value {
	crossCost, circleCost := p.linkCost(_cross), p.linkCost(_circle)
	switch {
	case crossCost == 0:
		return minimax.Value(math.Inf(1))
	case circleCost == 0:
		return minimax.Value(math.Inf(-1))
	}
	return minimax.Value(circleCost - crossCost)
}

func (p position) CurrentPlayer() minimax.Player {
	return minimax.Player(p.crossTurn)
}

func (p position) Actions() []move {
	if p.IsTerminal() {
		return nil
	}

	moves := make([]move, 0, _cells)
	for _, m := range _searchOrder {
		if p.cells[m] == _empty {
			moves = append(moves, m)
		}
	}
	return moves
}

// The receiver is a copy already, so placing the stone on it is pure
func (p position) Result(m move) position {
	if p.cells[m] != _empty {
		panic("[hex] Result: cell " + m.String() + " is occupied")
	}

	owner := _cross
	if !p.crossTurn {
		owner = _circle
	}
	p.cells[m] = owner
	p.crossTurn = !p.crossTurn
	return p
}
