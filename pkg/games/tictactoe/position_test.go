package tictactoe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"parlor/pkg/minimax"
)

// Every reachable state, deduplicated
func reachableStates() []position {
	seen := map[position]bool{}
	queue := []position{startPosition()}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if seen[p] {
			continue
		}
		seen[p] = true
		for _, m := range p.Actions() {
			queue = append(queue, p.Result(m))
		}
	}

	states := make([]position, 0, len(seen))
	for p := range seen {
		states = append(states, p)
	}
	return states
}

func TestActionsEmptyIffTerminal(t *testing.T) {
	states := reachableStates()
	require.Greater(t, len(states), 5000, "BFS should reach the full state space")

	for _, p := range states {
		require.Equal(t, p.IsTerminal(), len(p.Actions()) == 0,
			"actions/terminal mismatch on %v", p)
	}
}

func TestResultIsPure(t *testing.T) {
	p := startPosition().Result(4).Result(0)
	before := p
	actions := p.Actions()
	value := p.HeuristicValue()

	next := p.Result(actions[0])
	require.Equal(t, before, p, "receiver changed by Result")
	require.Equal(t, actions, p.Actions())
	require.Equal(t, value, p.HeuristicValue())
	require.NotEqual(t, p, next)

	require.Equal(t, next, p.Result(actions[0]), "equal inputs, different outputs")
}

func TestResultPanicsOnOccupiedCell(t *testing.T) {
	p := startPosition().Result(4)
	require.Panics(t, func() { p.Result(4) })
}

func TestWinPatterns(t *testing.T) {
	for _, pattern := range _winningPatterns {
		p := position{bitboards: [2]uint16{pattern, 0}}
		require.True(t, p.crossWon(), "pattern %09b not detected", pattern)
		require.True(t, p.IsTerminal())
		require.Equal(t, minimax.Value(math.Inf(1)), p.HeuristicValue())

		p = position{bitboards: [2]uint16{0, pattern}, crossTurn: true}
		require.True(t, p.circleWon(), "pattern %09b not detected", pattern)
		require.Equal(t, minimax.Value(math.Inf(-1)), p.HeuristicValue())
	}
}

// Naive full-width minimax used as the reference
func plainValue(p position, depth int) minimax.Value {
	if depth <= 0 || p.IsTerminal() {
		return p.HeuristicValue()
	}

	var best minimax.Value
	if p.CurrentPlayer() == minimax.Max {
		best = minimax.Value(math.Inf(-1))
		for _, m := range p.Actions() {
			best = max(best, plainValue(p.Result(m), depth-1))
		}
	} else {
		best = minimax.Value(math.Inf(1))
		for _, m := range p.Actions() {
			best = min(best, plainValue(p.Result(m), depth-1))
		}
	}
	return best
}

func plainBest(p position) (move, minimax.Value) {
	actions := p.Actions()
	best := actions[0]
	bestValue := plainValue(p.Result(actions[0]), minimax.DefaultDepthLimit)

	for _, m := range actions[1:] {
		v := plainValue(p.Result(m), minimax.DefaultDepthLimit)
		if (p.CurrentPlayer() == minimax.Max && v > bestValue) ||
			(p.CurrentPlayer() == minimax.Min && v < bestValue) {
			best, bestValue = m, v
		}
	}
	return best, bestValue
}

// Alpha-beta must agree with plain minimax on the whole game
func TestSearchAgreesWithPlainMinimax(t *testing.T) {
	for _, p := range reachableStates() {
		if p.IsTerminal() {
			continue
		}

		wantMove, wantValue := plainBest(p)
		gotMove, gotValue := minimax.BestAction(p, minimax.DefaultDepthLimit)
		require.Equal(t, wantMove, gotMove, "move mismatch on %v", p)
		require.Equal(t, wantValue, gotValue, "value mismatch on %v", p)
	}
}

func TestNotation(t *testing.T) {
	valid := map[string]move{
		"a1": 0, "a2": 1, "a3": 2,
		"b1": 3, "b2": 4, "b3": 5,
		"c1": 6, "c2": 7, "c3": 8,
		"B2": 4, " c3 ": 8,
	}
	for text, want := range valid {
		m, ok := parseMove(text)
		require.True(t, ok, "rejected %q", text)
		require.Equal(t, want, m, "parsed %q", text)
	}

	for m := move(0); m < 9; m++ {
		parsed, ok := parseMove(m.String())
		require.True(t, ok)
		require.Equal(t, m, parsed, "round trip of %s", m)
	}

	for _, text := range []string{"", "d1", "a4", "a0", "aa", "11", "a12", "1a"} {
		_, ok := parseMove(text)
		require.False(t, ok, "accepted %q", text)
	}
}
