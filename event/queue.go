package event

import (
	"sync/atomic"

	"github.com/lixenwraith/asteroids/parameter"
)

// EventQueue is a lock-free MPSC ring buffer for game events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume/Drain: Single consumer
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds event using lock-free CAS with published flags pattern
// Safe for concurrent producers. O(1) amortized
func (eq *EventQueue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			eq.events[idx] = event
			eq.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := eq.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize)
			}
			return
		}
	}
}

// Drain passes pending events to fn in FIFO order without allocating
// Returns the number of events delivered
func (eq *EventQueue) Drain(fn func(GameEvent)) int {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentTail == currentHead {
			return 0
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.EventQueueSize {
			maxAvailable = parameter.EventQueueSize
			currentHead = currentTail - parameter.EventQueueSize
		}

		var n uint64
		for ; n < maxAvailable; n++ {
			idx := (currentHead + n) & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break // Writer incomplete
			}
		}
		if n == 0 {
			return 0
		}

		newHead := currentHead + n
		if !eq.head.CompareAndSwap(currentHead, newHead) {
			continue
		}
		for i := uint64(0); i < n; i++ {
			idx := (currentHead + i) & parameter.EventBufferMask
			ev := eq.events[idx]
			eq.published[idx].Store(false)
			fn(ev)
		}
		return int(n)
	}
}

// Consume returns all pending events in FIFO order and advances head
func (eq *EventQueue) Consume() []GameEvent {
	var result []GameEvent
	eq.Drain(func(ev GameEvent) {
		result = append(result, ev)
	})
	return result
}

// Len returns approximate pending event count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return diff
}
