package minimax

import (
	"math"
)

/*
Minimax search with alpha-beta pruning over any StateLike implementation.

The engine is a pure function of the reachable state graph: no I/O, no
retained tree, no recoverable errors. An adapter that enumerates zero
actions on a non-terminal state is a fatal contract breach and panics.
*/

// Counters filled in during one search call
type searchStats struct {
	nodes    uint64
	maxdepth int // deepest ply reached
}

// BestAction returns the most favorable action for the side to move
// together with its score, searching 'depth' plies deep. Pass
// DefaultDepthLimit to search to terminal states only.
//
// Ties are broken deterministically: the first best-scoring action in
// Actions() order wins, so an identical state always yields the identical
// action, and a position where every action loses yields the first one.
func BestAction[S StateLike[S, A], A ActionLike](state S, depth int) (A, Value) {
	var stats searchStats
	return bestAction(state, depth, &stats)
}

func bestAction[S StateLike[S, A], A ActionLike](state S, depth int, stats *searchStats) (A, Value) {
	actions := state.Actions()
	if len(actions) == 0 {
		panic("[minimax] BestAction: no legal actions, position is terminal")
	}

	var (
		alpha    = Value(math.Inf(-1))
		beta     = Value(math.Inf(1))
		maximize = state.CurrentPlayer() == Max
		best     = actions[0]
	)
	stats.nodes++

	// The first action is evaluated before any comparison, so even an
	// all-losing position keeps a deterministic choice
	bestValue := alphaBeta(state.Result(actions[0]), depth-1, 1, alpha, beta, stats)
	if maximize {
		alpha = bestValue
	} else {
		beta = bestValue
	}

	for _, action := range actions[1:] {
		value := alphaBeta(state.Result(action), depth-1, 1, alpha, beta, stats)
		if maximize && value > bestValue {
			best, bestValue = action, value
			alpha = max(alpha, value)
		} else if !maximize && value < bestValue {
			best, bestValue = action, value
			beta = min(beta, value)
		}
	}

	return best, bestValue
}

// Recursive evaluation, alternating maximize/minimize per CurrentPlayer().
// 'depth' is the remaining budget, 'ply' the distance from the root.
func alphaBeta[S StateLike[S, A], A ActionLike](state S, depth, ply int, alpha, beta Value, stats *searchStats) Value {
	stats.nodes++
	stats.maxdepth = max(stats.maxdepth, ply)

	if depth <= 0 || state.IsTerminal() {
		return state.HeuristicValue()
	}

	actions := state.Actions()
	if len(actions) == 0 {
		panic("[minimax] alphaBeta: empty Actions() on a non-terminal state")
	}

	if state.CurrentPlayer() == Max {
		value := Value(math.Inf(-1))
		for _, action := range actions {
			value = max(value, alphaBeta(state.Result(action), depth-1, ply+1, alpha, beta, stats))
			alpha = max(alpha, value)

			// The minimizer above will never allow this line
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := Value(math.Inf(1))
	for _, action := range actions {
		value = min(value, alphaBeta(state.Result(action), depth-1, ply+1, alpha, beta, stats))
		beta = min(beta, value)

		if alpha >= beta {
			break
		}
	}
	return value
}
