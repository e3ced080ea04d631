package apcmini

import "sync"

// eventQueue hands events from the MIDI driver's callback goroutine to
// the consumer. It is unbounded so the callback never blocks, whatever
// the burst; a channel would either block or drop when full.
type eventQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	events []InputEvent
	closed bool
}

func newEventQueue() *eventQueue {
	q := &eventQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends an event. After close it is a no-op: the producer side
// lives on the driver's callback goroutine and has nowhere to report to.
func (q *eventQueue) push(ev InputEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.events = append(q.events, ev)
	q.cond.Signal()
}

// wait blocks until an event is available or the queue is closed and
// drained. Events come out in push order.
func (q *eventQueue) wait() (InputEvent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.events) == 0 && !q.closed {
		q.cond.Wait()
	}
	return q.popLocked()
}

// tryPop returns the next event without blocking.
func (q *eventQueue) tryPop() (InputEvent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.popLocked()
}

func (q *eventQueue) popLocked() (InputEvent, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev, true
}

// close stops accepting pushes and wakes every waiter. Already-queued
// events stay drainable.
func (q *eventQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}
