package connectfour

import (
	"strings"

	"parlor/pkg/games"
	"parlor/pkg/minimax"
)

func init() {
	games.Register("connect-four", New)
}

const (
	displayWidth  = 17
	displayHeight = 9

	// Eight plies keep a reply under a second while still spotting
	// every four-move trap
	defaultDepth = 8
)

const thumbnail = `· · · · ·
· · X · ·
· O X · ·
· X O · ·
X X O O ·`

type game struct {
	pos      position
	history  []string
	selector *minimax.Selector[position, move]
}

// New starts a game with the human playing X.
func New() games.Game {
	g := &game{
		pos:      startPosition(),
		selector: minimax.NewSelector[position, move](),
	}
	g.SetSearchDepth(defaultDepth)
	return g
}

func (g *game) Name() string { return "Connect Four" }

func (g *game) Thumbnail() string {
	return games.Block(thumbnail, games.ThumbnailWidth, games.ThumbnailHeight)
}

func (g *game) DisplaySize() (int, int) { return displayWidth, displayHeight }

func (g *game) Display() string {
	cell := func(col, row int) string {
		bit := uint64(1) << uint(col*7+row)
		switch {
		case g.pos.bitboards[_crossIdx]&bit != 0:
			return "X"
		case g.pos.bitboards[_circleIdx]&bit != 0:
			return "O"
		default:
			return "·"
		}
	}

	builder := strings.Builder{}
	builder.WriteString("  1 2 3 4 5 6 7")
	builder.WriteString("\n┌───────────────┐")
	for row := _rows - 1; row >= 0; row-- {
		builder.WriteString("\n│")
		for col := 0; col < _columns; col++ {
			builder.WriteString(" " + cell(col, row))
		}
		builder.WriteString(" │")
	}
	builder.WriteString("\n└───────────────┘")

	return games.Block(builder.String(), displayWidth, displayHeight)
}

func (g *game) MoveHistory() []string { return g.history }

func (g *game) WinState() games.WinState {
	switch {
	case g.pos.crossWon() || g.pos.circleWon():
		return games.Decisive
	case g.pos.full():
		return games.Draw
	default:
		return games.InProgress
	}
}

func (g *game) IsValidMove(text string) bool {
	m, ok := parseMove(text)
	return ok && !g.pos.IsTerminal() && g.pos.height(m) < _rows
}

func (g *game) PlayMove(text string) {
	m, ok := parseMove(text)
	if !ok || g.pos.IsTerminal() || g.pos.height(m) >= _rows {
		panic("[connectfour] PlayMove: invalid move " + text)
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
