package connectfour

import (
	"testing"

	"github.com/stretchr/testify/require"

	"parlor/pkg/games"
)

func script(t *testing.T, g games.Game, moves ...string) {
	t.Helper()

	for _, m := range moves {
		require.True(t, g.IsValidMove(m), "scripted move %q rejected", m)
		g.PlayMove(m)
	}
}

func TestComputerBlocksOpenThreat(t *testing.T) {
	g := New()
	g.(games.Tunable).SetSearchDepth(4)

	// X builds three in a row on the bottom, O throws its replies away
	script(t, g, "1", "7", "2", "7", "3")
	require.Equal(t, "4", g.ComputerMove())
	require.Equal(t, games.InProgress, g.WinState())
}

func TestComputerTakesTheWin(t *testing.T) {
	g := New()
	script(t, g, "1", "7", "2", "7", "3", "6")

	require.Equal(t, "4", g.ComputerMove())
	require.Equal(t, games.Decisive, g.WinState())
}

func TestScriptedVerticalWin(t *testing.T) {
	g := New()
	script(t, g, "1", "2", "1", "2", "1", "2", "1")

	require.Equal(t, games.Decisive, g.WinState())
	require.Len(t, g.MoveHistory(), 7)
	require.Empty(t, g.LegalMoves())
	require.False(t, g.IsValidMove("3"))
	require.Panics(t, func() { g.PlayMove("3") })
}

func TestHistoryAndReset(t *testing.T) {
	g := New()
	initial := g.Display()

	script(t, g, "4", "4")
	require.Equal(t, []string{"4", "4"}, g.MoveHistory())

	g.Reset()
	require.Empty(t, g.MoveHistory())
	require.Equal(t, games.InProgress, g.WinState())
	require.Equal(t, initial, g.Display())
	require.Len(t, g.LegalMoves(), 7)
}

func TestDisplay(t *testing.T) {
	g := New()
	require.Contains(t, g.Display(), "│ · · · · · · · │")
	require.Contains(t, g.Display(), "1 2 3 4 5 6 7")

	g.PlayMove("4")
	require.Contains(t, g.Display(), "│ · · · X · · · │")
	g.PlayMove("1")
	require.Contains(t, g.Display(), "│ O · · X · · · │")
}

func TestSearchInfoReporting(t *testing.T) {
	g := New()
	g.(games.Tunable).SetSearchDepth(3)

	var depths []int
	g.(games.Observable).OnSearchInfo(func(info games.SearchInfo) {
		depths = append(depths, info.Depth)
	})

	g.PlayMove("4")
	g.ComputerMove()

	require.NotEmpty(t, depths)
	require.IsIncreasing(t, depths, "deepening should report each depth once")
	require.Equal(t, 3, depths[len(depths)-1])
}
