package chess

import (
	"math"
	"sort"

	chesslib "github.com/notnil/chess"

	"parlor/pkg/minimax"
)

// The search side of the game, a thin shell around the library position.
// Update returns a fresh *Position, so the wrapper stays a pure value.
type position struct {
	inner *chesslib.Position
}

var _ minimax.StateLike[position, *chesslib.Move] = position{}

func (p position) IsTerminal() bool {
	return p.inner.Status() != chesslib.NoMethod
}

func (p position) HeuristicValue() minimax.Value {
	switch p.inner.Status() {
	case chesslib.Checkmate:
		if p.inner.Turn() == chesslib.White {
			return minimax.Value(math.Inf(-1))
		}
		return minimax.Value(math.Inf(1))
	case chesslib.Stalemate:
		return 0
	}
	return evaluate(p.inner)
}

func (p position) CurrentPlayer() minimax.Player {
	return minimax.Player(p.inner.Turn() == chesslib.White)
}

// What a capture gains, used to sort loud moves to the front
func captureValue(board *chesslib.Board, m *chesslib.Move) int {
	if m.HasTag(chesslib.EnPassant) {
		return _pieceValues[chesslib.Pawn]
	}
	if victim := board.Piece(m.S2()); victim != chesslib.NoPiece {
		return _pieceValues[victim.Type()]
	}
	return 0
}

// Valid moves with the most valuable victims first. The library caches
// the slice it hands out, so the reorder works on a copy.
func (p position) Actions() []*chesslib.Move {
	moves := p.inner.ValidMoves()
	if len(moves) == 0 {
		return nil
	}

	ordered := make([]*chesslib.Move, len(moves))
	copy(ordered, moves)

	board := p.inner.Board()
	sort.SliceStable(ordered, func(i, j int) bool {
		return captureValue(board, ordered[i]) > captureValue(board, ordered[j])
	})
	return ordered
}

func (p position) Result(m *chesslib.Move) position {
	return position{inner: p.inner.Update(m)}
}
