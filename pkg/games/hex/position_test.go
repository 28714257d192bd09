package hex

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"parlor/pkg/minimax"
)

// place stamps stones onto a copy of the position, bypassing turn order
func place(t *testing.T, p position, owner uint8, cells ...string) position {
	t.Helper()

	for _, c := range cells {
		m, ok := parseMove(c)
		require.True(t, ok, "bad cell %q", c)
		p.cells[m] = owner
	}
	return p
}

func column(letter byte, from, to int) []string {
	cells := make([]string, 0, to-from+1)
	for row := from; row <= to; row++ {
		cells = append(cells, fmt.Sprintf("%c%d", letter, row))
	}
	return cells
}

func TestNotation(t *testing.T) {
	for m := move(0); m < _cells; m++ {
		parsed, ok := parseMove(m.String())
		require.True(t, ok)
		require.Equal(t, m, parsed)
	}

	a1, _ := parseMove("A1")
	require.Equal(t, move(0), a1)
	k11, _ := parseMove("K11")
	require.Equal(t, move(_cells-1), k11)

	f6, ok := parseMove(" f6 ")
	require.True(t, ok, "notation should be case insensitive")
	require.Equal(t, "F6", f6.String())

	for _, text := range []string{"", "L1", "A0", "A12", "1A", "AA", "F"} {
		_, ok := parseMove(text)
		require.False(t, ok, "parseMove(%q) accepted garbage", text)
	}
}

func TestLinkCostOnEmptyBoard(t *testing.T) {
	p := startPosition()
	require.Equal(t, _size, p.linkCost(_cross))
	require.Equal(t, _size, p.linkCost(_circle))
	require.Equal(t, minimax.Value(0), p.HeuristicValue())
}

func TestLinkCostCountsMissingStones(t *testing.T) {
	p := place(t, startPosition(), _cross, "F6")
	require.Equal(t, _size-1, p.linkCost(_cross))
	require.Equal(t, _size, p.linkCost(_circle))
	require.Positive(t, p.HeuristicValue())

	// One cell short of a full column
	p = place(t, startPosition(), _cross, column('D', 1, 10)...)
	require.Equal(t, 1, p.linkCost(_cross))
	require.False(t, p.crossWon())
}

func TestOpponentStonesAreWalls(t *testing.T) {
	p := place(t, startPosition(), _cross, column('D', 1, 10)...)
	p = place(t, p, _circle, "D11")

	// D11 is taken but C11 still touches D10
	require.Equal(t, 1, p.linkCost(_cross))

	p = place(t, p, _circle, "C11")
	require.Greater(t, p.linkCost(_cross), 1)
}

func TestWinDetection(t *testing.T) {
	straight := place(t, startPosition(), _cross, column('D', 1, 11)...)
	require.True(t, straight.crossWon())
	require.True(t, straight.IsTerminal())
	require.Empty(t, straight.Actions())
	require.Equal(t, minimax.Value(math.Inf(1)), straight.HeuristicValue())

	// The chain may bend, (6,C) neighbours (7,B) on the slanted grid
	bent := place(t, startPosition(), _cross, column('C', 1, 7)...)
	bent = place(t, bent, _cross, column('B', 8, 11)...)
	require.True(t, bent.crossWon())

	broken := place(t, startPosition(), _cross, column('D', 1, 5)...)
	broken = place(t, broken, _cross, column('D', 7, 11)...)
	require.False(t, broken.crossWon())

	row := make([]string, _size)
	for col := 0; col < _size; col++ {
		row[col] = fmt.Sprintf("%c6", 'A'+col)
	}
	sideways := place(t, startPosition(), _circle, row...)
	require.True(t, sideways.circleWon())
	require.False(t, sideways.crossWon())
	require.Equal(t, minimax.Value(math.Inf(-1)), sideways.HeuristicValue())
}

func TestActionsCentreFirst(t *testing.T) {
	actions := startPosition().Actions()
	require.Len(t, actions, _cells)
	require.Equal(t, "F6", actions[0].String())
}

func TestResultIsPure(t *testing.T) {
	p := startPosition()
	m, _ := parseMove("F6")
	q := p.Result(m)

	require.Equal(t, startPosition(), p)
	require.Equal(t, _cross, q.cells[m])
	require.Equal(t, minimax.Min, q.CurrentPlayer())
	require.Panics(t, func() { q.Result(m) })
}
