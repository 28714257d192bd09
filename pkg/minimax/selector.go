package minimax

import (
	"math"
)

/*
Move selector: the policy layer between a game and the raw engine.

One Search call runs iterative deepening from depth 1 under the configured
limits and keeps the deepest completed result. The search is synchronous
and single-threaded, the caller blocks until it returns. There is no
cancellation primitive: the time budget is soft, a new iteration starts
only while less than half of it is spent and a started iteration always
runs to completion.
*/

// Final statistics of one Search call
type Result[A ActionLike] struct {
	Action     A
	Value      Value
	Depth      int
	Nodes      uint64
	TimeMs     int
	StopReason StopReason
}

type Selector[S StateLike[S, A], A ActionLike] struct {
	limits   *Limits
	listener StatsListener[A]
}

// NewSelector creates a selector with no limits, searching to terminal
// states. Suitable only for small trees, larger games set a depth or a
// movetime through SetLimits.
func NewSelector[S StateLike[S, A], A ActionLike]() *Selector[S, A] {
	return &Selector[S, A]{limits: DefaultLimits()}
}

func (s *Selector[S, A]) SetLimits(limits *Limits) *Selector[S, A] {
	s.limits = limits
	return s
}

func (s *Selector[S, A]) Limits() *Limits {
	return s.limits
}

func (s *Selector[S, A]) SetListener(listener StatsListener[A]) *Selector[S, A] {
	s.listener = listener
	return s
}

// Search picks the best action for the side to move on 'state'.
// Ties and forced losses resolve to the first action in Actions() order,
// exactly as in BestAction, so repeated calls stay reproducible.
func (s *Selector[S, A]) Search(state S) Result[A] {
	var (
		timer    = _NewTimer(s.limits.Movetime)
		stats    searchStats
		res      Result[A]
		reason   StopReason
		depthCap = max(s.limits.Depth, 1)
	)

	for depth := 1; reason == StopNone; depth++ {
		action, value := bestAction(state, depth, &stats)

		switch {
		case math.IsInf(float64(value), 0):
			// Proven win or loss, deeper iterations cannot change it
			reason = StopTerminal
		case stats.maxdepth < depth:
			// Every line ended before the depth budget, the whole tree
			// is already exhausted
			reason = StopTerminal
		case depth >= depthCap:
			reason = StopDepth
		case timer.HalfTime():
			reason = StopMovetime
		}

		res = Result[A]{
			Action:     action,
			Value:      value,
			Depth:      min(depth, stats.maxdepth),
			Nodes:      stats.nodes,
			TimeMs:     timer.Deltatime(),
			StopReason: reason,
		}
		s.listener.invokeDepth(res)
	}

	s.listener.invokeStop(res)
	return res
}
