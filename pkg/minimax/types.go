package minimax

// Core types shared by the search engine and the move selector

// Evaluation of a position from the maximizer's perspective,
// +Inf being a certain maximizer win, -Inf a certain loss and 0 a draw
type Value float64

// Move token produced by a state's action enumeration, must support
// equality comparison and duplication
type ActionLike comparable

// Side to move, Max is the maximizer
type Player bool

const (
	Max Player = true
	Min Player = false
)

// The other side
func (p Player) Opposite() Player {
	return !p
}

func (p Player) String() string {
	if p == Max {
		return "Max"
	}
	return "Min"
}

// StateLike is the contract every searchable game position satisfies.
// Implementations are value types: Result returns a fresh state and the
// receiver stays untouched, so positions created during the search are
// plain stack values discarded on return.
type StateLike[S any, A ActionLike] interface {
	// True iff no legal action exists
	IsTerminal() bool

	// Evaluation from the maximizer's perspective, exact and strictly
	// ordered at terminal states (win > draw > loss), an estimate otherwise
	HeuristicValue() Value

	// Side to move
	CurrentPlayer() Player

	// Ordered, deterministic enumeration of the legal actions,
	// empty exactly when IsTerminal() is true. The order is the per-game
	// pruning lever, e.g. captures first
	Actions() []A

	// Pure transition, the position after 'action'. The action must come
	// from this exact state's Actions(), anything else is an adapter bug
	Result(action A) S
}
