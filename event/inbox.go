package event

import (
	"runtime"
	"sync/atomic"
)

const inboxSlots = 256

// Inbox is a fixed-size multi-producer, single-consumer event queue.
//
// The windowing layer posts into it while polling; the application loop drains
// it once per iteration, so handlers only ever run at that frame boundary.
type Inbox struct {
	_       [0]func() // prevent accidental copying.
	head    atomic.Uint32
	tail    atomic.Uint32
	dropped atomic.Uint32
	slots   [inboxSlots]slot
}

type slot struct {
	ready atomic.Bool
	ev    Event
}

// TryPost attempts to enqueue an event, returning false if the inbox is full.
func (in *Inbox) TryPost(ev Event) bool {
	head := in.head.Load()
	tail := in.tail.Load()
	if head-tail >= inboxSlots {
		return false
	}

	// Reserve a slot.
	if !in.head.CompareAndSwap(head, head+1) {
		return false
	}

	s := &in.slots[head%inboxSlots]
	s.ev = ev
	s.ready.Store(true)
	return true
}

// Post enqueues an event. A full inbox drops the event and counts it.
func (in *Inbox) Post(ev Event) bool {
	for i := 0; i < 4; i++ {
		if in.TryPost(ev) {
			return true
		}
		runtime.Gosched()
	}
	in.dropped.Add(1)
	return false
}

// TryRecv attempts to dequeue one event, returning false if empty.
func (in *Inbox) TryRecv() (Event, bool) {
	tail := in.tail.Load()
	head := in.head.Load()
	if tail == head {
		return Event{}, false
	}

	// A reserved slot may not be written yet.
	s := &in.slots[tail%inboxSlots]
	if !s.ready.Load() {
		return Event{}, false
	}
	ev := s.ev
	s.ev = Event{}
	s.ready.Store(false)
	in.tail.Store(tail + 1)
	return ev, true
}

// Drain delivers every event queued at call time to fn, in order, and returns
// how many were delivered. Events posted by fn are left for the next drain.
func (in *Inbox) Drain(fn func(Event)) int {
	n := int(in.head.Load() - in.tail.Load())
	for i := 0; i < n; i++ {
		ev, ok := in.TryRecv()
		if !ok {
			return i
		}
		fn(ev)
	}
	return n
}

// Len returns the number of queued events.
func (in *Inbox) Len() int {
	return int(in.head.Load() - in.tail.Load())
}

// Dropped returns and resets the number of events lost to a full inbox.
func (in *Inbox) Dropped() uint32 {
	return in.dropped.Swap(0)
}
