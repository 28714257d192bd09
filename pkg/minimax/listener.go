package minimax

// Listener function callback, will recieve the statistics of the
// completed iteration
type ListenerFunc[A ActionLike] func(Result[A])

type StatsListener[A ActionLike] struct {
	// called after each completed deepening iteration
	onDepth ListenerFunc[A]

	// called once when the search stops, makes 'StopReason' available
	onStop ListenerFunc[A]
}

func NewStatsListener[A ActionLike]() StatsListener[A] {
	return StatsListener[A]{}
}

// Attach new on depth callback, called by the searching goroutine itself,
// so no synchronization is needed here
func (listener *StatsListener[A]) OnDepth(onDepth ListenerFunc[A]) *StatsListener[A] {
	listener.onDepth = onDepth
	return listener
}

// Attach 'on search end' callback, called once after the last iteration
func (listener *StatsListener[A]) OnStop(onStop ListenerFunc[A]) *StatsListener[A] {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener[A]) invokeDepth(res Result[A]) {
	if listener.onDepth != nil {
		listener.onDepth(res)
	}
}

func (listener *StatsListener[A]) invokeStop(res Result[A]) {
	if listener.onStop != nil {
		listener.onStop(res)
	}
}
