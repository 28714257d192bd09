package minimax

import (
	"math"
	"testing"
)

// A complete ternary tree for exercising the engine: states are node
// indexes, leaves sit at ply 'height'. Leaf values are spread with a prime
// multiplier so every subtree has a distinct optimum, 'flat' collapses all
// leaves to the same value for tie-break tests.
type treeNode struct {
	id      int
	ply     int
	height  int
	flat    bool
	maxTurn bool
}

var _ StateLike[treeNode, int] = treeNode{}

func newTree(height int, flat bool) treeNode {
	return treeNode{height: height, flat: flat, maxTurn: true}
}

func (n treeNode) IsTerminal() bool {
	return n.ply == n.height
}

func (n treeNode) HeuristicValue() Value {
	if n.IsTerminal() {
		if n.flat {
			return 7
		}
		return Value((n.id*7919)%101 - 50)
	}
	// Interior estimate, returned at depth cutoffs
	return Value((n.id*31)%21 - 10)
}

func (n treeNode) CurrentPlayer() Player {
	return Player(n.maxTurn)
}

func (n treeNode) Actions() []int {
	if n.IsTerminal() {
		return nil
	}
	return []int{0, 1, 2}
}

func (n treeNode) Result(a int) treeNode {
	return treeNode{
		id:      n.id*3 + a + 1,
		ply:     n.ply + 1,
		height:  n.height,
		flat:    n.flat,
		maxTurn: !n.maxTurn,
	}
}

// Reference implementation without pruning, kept deliberately naive
func plainMinimax(n treeNode, depth int) Value {
	if depth <= 0 || n.IsTerminal() {
		return n.HeuristicValue()
	}

	var best Value
	if n.CurrentPlayer() == Max {
		best = Value(math.Inf(-1))
		for _, a := range n.Actions() {
			best = max(best, plainMinimax(n.Result(a), depth-1))
		}
	} else {
		best = Value(math.Inf(1))
		for _, a := range n.Actions() {
			best = min(best, plainMinimax(n.Result(a), depth-1))
		}
	}
	return best
}

func plainBest(n treeNode, depth int) (int, Value) {
	actions := n.Actions()
	best := actions[0]
	bestValue := plainMinimax(n.Result(actions[0]), depth-1)

	for _, a := range actions[1:] {
		v := plainMinimax(n.Result(a), depth-1)
		if (n.CurrentPlayer() == Max && v > bestValue) || (n.CurrentPlayer() == Min && v < bestValue) {
			best, bestValue = a, v
		}
	}
	return best, bestValue
}

// Every non-terminal state of the tree, in breadth-first order
func interiorStates(root treeNode) []treeNode {
	var states []treeNode
	queue := []treeNode{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.IsTerminal() {
			continue
		}
		states = append(states, n)
		for _, a := range n.Actions() {
			queue = append(queue, n.Result(a))
		}
	}
	return states
}

// Pruning must never change the chosen action or its score, checked
// against the naive reference on every reachable non-terminal state
func TestBestActionAgreesWithPlainMinimax(t *testing.T) {
	root := newTree(4, false)

	for _, depth := range []int{1, 2, DefaultDepthLimit} {
		for _, state := range interiorStates(root) {
			wantAction, wantValue := plainBest(state, depth)
			gotAction, gotValue := BestAction(state, depth)

			if gotAction != wantAction || gotValue != wantValue {
				t.Fatalf("node %d depth %d: got (%d, %v), want (%d, %v)",
					state.id, depth, gotAction, gotValue, wantAction, wantValue)
			}
		}
	}
}

func TestBestActionDeterministic(t *testing.T) {
	root := newTree(4, false)
	firstAction, firstValue := BestAction(root, DefaultDepthLimit)

	for i := 0; i < 5; i++ {
		action, value := BestAction(root, DefaultDepthLimit)
		if action != firstAction || value != firstValue {
			t.Fatalf("call %d: got (%d, %v), want (%d, %v)", i, action, value, firstAction, firstValue)
		}
	}
}

// When every action scores the same, the first one in Actions() order wins
func TestBestActionTieBreak(t *testing.T) {
	root := newTree(3, true)

	for _, state := range interiorStates(root) {
		action, value := BestAction(state, DefaultDepthLimit)
		if action != 0 {
			t.Fatalf("node %d: got action %d on an all-equal tree, want 0", state.id, action)
		}
		if value != 7 {
			t.Fatalf("node %d: got value %v, want 7", state.id, value)
		}
	}
}

// At depth 1 the children's interior estimates decide: ids 1, 2, 3
// evaluate to 0, 10 and -1, so the maximizer must pick action 1
func TestBestActionDepthCutoff(t *testing.T) {
	root := newTree(4, false)

	action, value := BestAction(root, 1)
	if action != 1 || value != 10 {
		t.Fatalf("got (%d, %v), want (1, 10)", action, value)
	}
}

// Claims to be non-terminal but enumerates nothing past 'lieAt' plies
type lyingState struct {
	ply   int
	lieAt int
}

var _ StateLike[lyingState, int] = lyingState{}

func (l lyingState) IsTerminal() bool { return false }

func (l lyingState) HeuristicValue() Value { return 0 }

func (l lyingState) CurrentPlayer() Player { return Max }

func (l lyingState) Result(int) lyingState { return lyingState{ply: l.ply + 1, lieAt: l.lieAt} }

func (l lyingState) Actions() []int {
	if l.ply >= l.lieAt {
		return nil
	}
	return []int{0}
}

func TestBestActionPanicsOnEmptyRoot(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("no panic on empty Actions() at the root")
		}
	}()
	BestAction(lyingState{lieAt: 0}, 3)
}

func TestBestActionPanicsOnContractBreach(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("no panic on empty Actions() below the root")
		}
	}()
	BestAction(lyingState{lieAt: 2}, 5)
}
