package games

import (
	"fmt"

	"parlor/pkg/minimax"
)

// Action types that know their own notation
type notatedAction interface {
	comparable
	fmt.Stringer
}

// InfoListener adapts an Observable callback to a selector stats listener,
// rendering actions to their notation. A nil callback yields an empty
// listener, detaching any previous one.
func InfoListener[A notatedAction](fn func(SearchInfo)) minimax.StatsListener[A] {
	listener := minimax.NewStatsListener[A]()
	if fn == nil {
		return listener
	}

	listener.OnDepth(func(res minimax.Result[A]) {
		fn(SearchInfo{
			Depth:  res.Depth,
			Value:  float64(res.Value),
			Move:   res.Action.String(),
			Nodes:  res.Nodes,
			TimeMs: res.TimeMs,
		})
	})
	return listener
}
