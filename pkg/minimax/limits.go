package minimax

import (
	"encoding/json"
	"math"
	"strings"
)

type Limits struct {
	Depth    int
	Movetime int
	Infinite bool
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultDepthLimit    int = math.MaxInt
	DefaultMovetimeLimit int = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		Depth:    DefaultDepthLimit,
		Movetime: DefaultMovetimeLimit,
		Infinite: true,
	}
}

// Set the maximum depth of the search, in plies
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = depth
	l.Infinite = false
	return l
}

// Set the maximum time for the engine to think, in milliseconds
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	l.Infinite = false
	return l
}

func (l *Limits) SetInfinite(infinite bool) {
	l.Infinite = infinite
}

type StopReason int

const (
	StopNone     StopReason = iota
	StopDepth               = 1 // Depth limit reached
	StopMovetime            = 2 // Time budget spent
	StopTerminal            = 4 // Outcome proven, deeper search cannot change it
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopDepth, "Depth"},
		{StopMovetime, "Movetime"},
		{StopTerminal, "Terminal"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}
