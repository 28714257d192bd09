package chess

import (
	"strings"

	chesslib "github.com/notnil/chess"

	"parlor/pkg/games"
	"parlor/pkg/minimax"
)

func init() {
	games.Register("chess", New)
}

const (
	displayWidth  = 21
	displayHeight = 11

	// Full-board evaluations are expensive, three plies keeps the reply
	// under a few seconds without dropping pieces to shallow tactics
	defaultDepth = 3
)

const thumbnail = `♜ ♞ ♝ ♛ ♚
♟ ♟ ♟ ♟ ♟
· · · · ·
♙ ♙ ♙ ♙ ♙
♖ ♘ ♗ ♕ ♔`

var _glyphs = map[chesslib.Color]map[chesslib.PieceType]string{
	chesslib.White: {
		chesslib.King: "♔", chesslib.Queen: "♕", chesslib.Rook: "♖",
		chesslib.Bishop: "♗", chesslib.Knight: "♘", chesslib.Pawn: "♙",
	},
	chesslib.Black: {
		chesslib.King: "♚", chesslib.Queen: "♛", chesslib.Rook: "♜",
		chesslib.Bishop: "♝", chesslib.Knight: "♞", chesslib.Pawn: "♟",
	},
}

type game struct {
	inner    *chesslib.Game
	history  []string
	selector *minimax.Selector[position, *chesslib.Move]
}

// New starts a game with the human playing White.
func New() games.Game {
	g := &game{
		inner:    chesslib.NewGame(),
		selector: minimax.NewSelector[position, *chesslib.Move](),
	}
	g.SetSearchDepth(defaultDepth)
	return g
}

func (g *game) Name() string { return "Chess" }

func (g *game) Thumbnail() string {
	return games.Block(thumbnail, games.ThumbnailWidth, games.ThumbnailHeight)
}

func (g *game) DisplaySize() (int, int) { return displayWidth, displayHeight }

func (g *game) Display() string {
	board := g.inner.Position().Board()
	cell := func(sq chesslib.Square) string {
		piece := board.Piece(sq)
		if piece == chesslib.NoPiece {
			return "·"
		}
		return _glyphs[piece.Color()][piece.Type()]
	}

	builder := strings.Builder{}
	builder.WriteString("    a b c d e f g h")
	builder.WriteString("\n  ┌─────────────────┐")
	for rank := 7; rank >= 0; rank-- {
		builder.WriteString("\n")
		builder.WriteByte('1' + byte(rank))
		builder.WriteString(" │")
		for file := 0; file < 8; file++ {
			builder.WriteString(" " + cell(chesslib.Square(rank*8+file)))
		}
		builder.WriteString(" │")
	}
	builder.WriteString("\n  └─────────────────┘")

	return games.Block(builder.String(), displayWidth, displayHeight)
}

func (g *game) MoveHistory() []string { return g.history }

func (g *game) WinState() games.WinState {
	switch g.inner.Outcome() {
	case chesslib.NoOutcome:
		return games.InProgress
	case chesslib.Draw:
		return games.Draw
	default:
		return games.Decisive
	}
}

func (g *game) IsValidMove(text string) bool {
	if g.inner.Outcome() != chesslib.NoOutcome {
		return false
	}
	_, err := chesslib.AlgebraicNotation{}.Decode(g.inner.Position(), text)
	return err == nil
}

func (g *game) PlayMove(text string) {
	m, err := chesslib.AlgebraicNotation{}.Decode(g.inner.Position(), text)
	if err != nil || g.inner.Outcome() != chesslib.NoOutcome {
		panic("[chess] PlayMove: invalid move " + text)
	}

	// Encode against the position the move is made from, the canonical
	// form carries capture and check suffixes
	notation := chesslib.AlgebraicNotation{}.Encode(g.inner.Position(), m)
	if err := g.inner.Move(m); err != nil {
		panic("[chess] PlayMove: " + err.Error())
	}
	g.history = append(g.history, notation)
}

func (g *game) ComputerMove() string {
	res := g.selector.Search(position{inner: g.inner.Position()})

	notation := chesslib.AlgebraicNotation{}.Encode(g.inner.Position(), res.Action)
	if err := g.inner.Move(res.Action); err != nil {
		panic("[chess] ComputerMove: " + err.Error())
	}
	g.history = append(g.history, notation)
	return notation
}

func (g *game) Reset() {
	g.inner = chesslib.NewGame()
	g.history = nil
}

func (g *game) LegalMoves() []string {
	// The position keeps its moves when the game drew by a rule the
	// board alone cannot see, fivefold repetition or the 75 move rule
	if g.inner.Outcome() != chesslib.NoOutcome {
		return nil
	}

	pos := g.inner.Position()
	valid := pos.ValidMoves()

	moves := make([]string, len(valid))
	for i, m := range valid {
		moves[i] = chesslib.AlgebraicNotation{}.Encode(pos, m)
	}
	return moves
}

func (g *game) SetSearchDepth(plies int) {
	g.selector.SetLimits(minimax.DefaultLimits().SetDepth(plies))
}

func (g *game) OnSearchInfo(fn func(games.SearchInfo)) {
	g.selector.SetListener(games.InfoListener[*chesslib.Move](fn))
}
