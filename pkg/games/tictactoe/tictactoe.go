package tictactoe

import (
	"strings"

	"parlor/pkg/games"
	"parlor/pkg/minimax"
)

func init() {
	games.Register("tic-tac-toe", New)
}

const (
	displayWidth  = 15
	displayHeight = 8
)

const thumbnail = ` X │ O │
───┼───┼───
   │ X │
───┼───┼───
 O │   │ X`

type game struct {
	pos      position
	history  []string
	selector *minimax.Selector[position, move]
}

// New starts a game with the human playing X. The tree is small enough
// to search to terminal states, so the selector keeps its default limits.
func New() games.Game {
	return &game{
		pos:      startPosition(),
		selector: minimax.NewSelector[position, move](),
	}
}

func (g *game) Name() string { return "Tic-Tac-Toe" }

func (g *game) Thumbnail() string {
	return games.Block(thumbnail, games.ThumbnailWidth, games.ThumbnailHeight)
}

func (g *game) DisplaySize() (int, int) { return displayWidth, displayHeight }

func (g *game) Display() string {
	cell := func(m move) string {
		switch {
		case g.pos.bitboards[_crossIdx]&(1<<m) != 0:
			return "X"
		case g.pos.bitboards[_circleIdx]&(1<<m) != 0:
			return "O"
		default:
			return " "
		}
	}

	builder := strings.Builder{}
	builder.WriteString("    a   b   c")
	for y := 0; y < 3; y++ {
		if y == 0 {
			builder.WriteString("\n  ┌───┬───┬───┐")
		} else {
			builder.WriteString("\n  ├───┼───┼───┤")
		}
		builder.WriteString("\n")
		builder.WriteByte('1' + byte(y))
		builder.WriteString(" │ " + cell(move(y)) + " │ " + cell(move(y+3)) + " │ " + cell(move(y+6)) + " │")
	}
	builder.WriteString("\n  └───┴───┴───┘")

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
	return ok && !g.pos.IsTerminal() && g.pos.free(m)
}

func (g *game) PlayMove(text string) {
	m, ok := parseMove(text)
	if !ok || g.pos.IsTerminal() || !g.pos.free(m) {
		panic("[tictactoe] PlayMove: invalid move " + text)
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
