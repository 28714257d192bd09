package games

/*
Game facade contract: one instance orchestrates a single live game and
exclusively owns its state. PlayMove, ComputerMove and Reset must never be
called concurrently on the same instance, instances never share state.
*/

type Game interface {
	Name() string

	// Fixed selection preview, exactly ThumbnailWidth x ThumbnailHeight
	Thumbnail() string

	// Text block whose dimensions exactly equal DisplaySize()
	Display() string
	DisplaySize() (w, h int)

	// Applied moves in their textual notation, cleared only by Reset
	MoveHistory() []string

	// Derived from the live state after the most recent move
	WinState() WinState

	// Wheter 'text' denotes a legal move in the current position
	IsValidMove(text string) bool

	// Apply an already validated move. Calling this with input that
	// IsValidMove rejects is a precondition violation and panics
	PlayMove(text string)

	// Search for the best reply, apply it and return its notation
	ComputerMove() string

	// Restore the initial position and clear the history
	Reset()

	// Notations of the current legal moves, in enumeration order
	LegalMoves() []string
}

const (
	ThumbnailWidth  = 11
	ThumbnailHeight = 5
)

// Tri-state game outcome. Decisive means the player who made the most
// recent move won: a win is announced after the human's move, a loss
// after the computer's.
type WinState uint8

const (
	InProgress WinState = iota
	Decisive
	Draw
)

func (ws WinState) String() string {
	switch ws {
	case Decisive:
		return "Decisive"
	case Draw:
		return "Draw"
	default:
		return "InProgress"
	}
}

// Games with an adjustable search depth, used by the arena to pit two
// configurations against each other
type Tunable interface {
	SetSearchDepth(plies int)
}

// Per-iteration search statistics with the action already rendered to
// its notation, reported by games that implement Observable
type SearchInfo struct {
	Depth  int
	Value  float64
	Move   string
	Nodes  uint64
	TimeMs int
}

// Games that report search progress, used by the debug mode of the UI
type Observable interface {
	// Passing nil detaches the callback
	OnSearchInfo(fn func(SearchInfo))
}
