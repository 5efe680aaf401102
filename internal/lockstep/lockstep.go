// Package lockstep pairs a polling loop with a callback-driven tick source.
//
// The tick source (a game Update callback) waits in Serve until the loop
// asks for a tick with Step, runs its sample function, and then stays parked
// until the loop asks for the following tick. State written by sample is
// therefore only ever read by the loop while the tick source is parked, and
// the other way round.
package lockstep

import "sync"

// Gate is one loop/tick-source pair.
type Gate struct {
	ready chan struct{} // loop -> source: parked, sample now
	tick  chan struct{} // source -> loop: sampled
	done  chan struct{} // loop -> source: finished with this tick
	quit  chan struct{} // closed by Quit
	gone  chan struct{} // closed by Stop

	quitOnce, stopOnce sync.Once

	// Loop goroutine only.
	holding bool
}

func New() *Gate {
	return &Gate{
		ready: make(chan struct{}),
		tick:  make(chan struct{}),
		done:  make(chan struct{}),
		quit:  make(chan struct{}),
		gone:  make(chan struct{}),
	}
}

// Step releases the tick held from the previous call and parks until the
// next one has been sampled. It reports false once the source has stopped.
func (g *Gate) Step() bool {
	if g.holding {
		g.holding = false
		select {
		case g.done <- struct{}{}:
		case <-g.gone:
			return false
		}
	}
	select {
	case g.ready <- struct{}{}:
	case <-g.gone:
		return false
	}
	select {
	case <-g.tick:
	case <-g.gone:
		return false
	}
	g.holding = true
	return true
}

// StepUntil steps until pending reports true or the source stops.
func (g *Gate) StepUntil(pending func() bool) bool {
	for !pending() {
		if !g.Step() {
			return false
		}
	}
	return true
}

// Serve runs one tick on the source side. It reports false when Quit was
// called, in which case the source should terminate.
func (g *Gate) Serve(sample func()) bool {
	select {
	case <-g.ready:
	case <-g.quit:
		return false
	}
	sample()
	select {
	case g.tick <- struct{}{}:
	case <-g.quit:
		return false
	}
	select {
	case <-g.done:
	case <-g.quit:
		return false
	}
	return true
}

// Quit asks the source to terminate at its next Serve.
func (g *Gate) Quit() { g.quitOnce.Do(func() { close(g.quit) }) }

// Stop marks the source as gone and unblocks the loop.
func (g *Gate) Stop() { g.stopOnce.Do(func() { close(g.gone) }) }

func (g *Gate) Quitting() bool { return closed(g.quit) }
func (g *Gate) Stopped() bool  { return closed(g.gone) }

func closed(c chan struct{}) bool {
	select {
	case <-c:
		return true
	default:
		return false
	}
}
