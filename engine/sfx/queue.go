package sfx

import "sync/atomic"

const queueSlots = 16

// cueQueue is a fixed-size single-producer, single-consumer queue of sounds.
// The game loop produces and the audio pump consumes. It never allocates and
// never blocks.
type cueQueue struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [queueSlots]Sound
}

// TrySend enqueues s, returning false if the queue is full.
func (q *cueQueue) TrySend(s Sound) bool {
	head := q.head.Load()
	tail := q.tail.Load()
	if head-tail >= queueSlots {
		return false
	}
	q.slots[head%queueSlots] = s
	q.head.Store(head + 1)
	return true
}

// TryRecv dequeues one sound, returning false if the queue is empty.
func (q *cueQueue) TryRecv() (Sound, bool) {
	tail := q.tail.Load()
	head := q.head.Load()
	if tail == head {
		return 0, false
	}
	s := q.slots[tail%queueSlots]
	q.tail.Store(tail + 1)
	return s, true
}
