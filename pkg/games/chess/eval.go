package chess

import (
	chesslib "github.com/notnil/chess"

	"parlor/pkg/minimax"
)

// Centipawn material values
var _pieceValues = map[chesslib.PieceType]int{
	chesslib.Pawn:   100,
	chesslib.Knight: 320,
	chesslib.Bishop: 330,
	chesslib.Rook:   550,
	chesslib.Queen:  900,
}

// Piece square tables, written the way a diagram reads with the eighth
// rank on top. The board indexes squares from a1, so White lookups flip
// the square and Black reads it directly.
var _pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var _knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var _bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var _rookTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var _queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var _kingTable = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var _pieceTables = map[chesslib.PieceType]*[64]int{
	chesslib.Pawn:   &_pawnTable,
	chesslib.Knight: &_knightTable,
	chesslib.Bishop: &_bishopTable,
	chesslib.Rook:   &_rookTable,
	chesslib.Queen:  &_queenTable,
	chesslib.King:   &_kingTable,
}

func pieceSquare(piece chesslib.Piece, sq chesslib.Square) int {
	idx := int(sq)
	if piece.Color() == chesslib.White {
		idx = (7-idx/8)*8 + idx%8
	}
	return _pieceTables[piece.Type()][idx]
}

// Material and piece placement from White's point of view
func evaluate(pos *chesslib.Position) minimax.Value {
	board := pos.Board()

	score := 0
	for sq := chesslib.A1; sq <= chesslib.H8; sq++ {
		piece := board.Piece(sq)
		if piece == chesslib.NoPiece {
			continue
		}

		value := _pieceValues[piece.Type()] + pieceSquare(piece, sq)
		if piece.Color() == chesslib.White {
			score += value
		} else {
			score -= value
		}
	}
	return minimax.Value(score)
}
