package hex

import (
	"fmt"
	"strings"

	"parlor/pkg/games"
	"parlor/pkg/minimax"
)

func init() {
	games.Register("hex", New)
}

const (
	displayWidth  = 34
	displayHeight = 12

	// 121 cells to branch over and a path search inside every evaluation,
	// two plies is what stays responsive
	defaultDepth = 2
)

const thumbnail = `X · O ·
 · X O ·
  · X · ·
   O X · ·
    O · X ·`

type game struct {
	pos      position
	history  []string
	selector *minimax.Selector[position, move]
}

// New starts a game with the human playing X, connecting top to bottom.
func New() games.Game {
	g := &game{
		pos:      startPosition(),
		selector: minimax.NewSelector[position, move](),
	}
	g.SetSearchDepth(defaultDepth)
	return g
}

func (g *game) Name() string { return "Hex" }

func (g *game) Thumbnail() string {
	return games.Block(thumbnail, games.ThumbnailWidth, games.ThumbnailHeight)
}

func (g *game) DisplaySize() (int, int) { return displayWidth, displayHeight }

// The staircase indent mimics the slant of the hex grid, every row
// shifts one column right of the one above
func (g *game) Display() string {
	cell := func(idx int) string {
		switch g.pos.cells[idx] {
		case _cross:
			return "X"
		case _circle:
			return "O"
		default:
			return "·"
		}
	}

	builder := strings.Builder{}
	builder.WriteString("   A B C D E F G H I J K")
	for row := 0; row < _size; row++ {
		builder.WriteString("\n" + strings.Repeat(" ", row))
		fmt.Fprintf(&builder, "%2d", row+1)
		for col := 0; col < _size; col++ {
			builder.WriteString(" " + cell(row*_size+col))
		}
	}

	return games.Block(builder.String(), displayWidth, displayHeight)
}

func (g *game) MoveHistory() []string { return g.history }

// Hex admits no draws, a full board always holds a winner
func (g *game) WinState() games.WinState {
	if g.pos.crossWon() || g.pos.circleWon() {
		return games.Decisive
	}
	return games.InProgress
}

func (g *game) IsValidMove(text string) bool {
	m, ok := parseMove(text)
	return ok && !g.pos.IsTerminal() && g.pos.cells[m] == _empty
}

func (g *game) PlayMove(text string) {
	m, ok := parseMove(text)
	if !ok || g.pos.IsTerminal() || g.pos.cells[m] != _empty {
		panic("[hex] PlayMove: invalid move " + text)
	}

	g.pos = g.pos.Result(m)
	g.history = append(g.history, m.String())
}

func (g *game) ComputerMove() string {
	res := g.selector.Search(g.pos)
	g.pos = g.pos.Result(res.Action)

	notation := res.Action.String()
	g.history = append(g.history, notation)
	return notation
}

func (g *game) Reset() {
	g.pos = startPosition()
	g.history = nil
}

func (g *game) LegalMoves() []string {
	actions := g.pos.Actions()
	moves := make([]string, len(actions))
	for i, a := range actions {
		moves[i] = a.String()
	}
	return moves
}

func (g *game) SetSearchDepth(plies int) {
	g.selector.SetLimits(minimax.DefaultLimits().SetDepth(plies))
}

func (g *game) OnSearchInfo(fn func(games.SearchInfo)) {
	g.selector.SetListener(games.InfoListener[move](fn))
}
