package hal

import "sync"

// sampleRing is a bounded blocking FIFO of mono samples shared by a
// producer (the mixer) and a consumer (the audio device).
type sampleRing struct {
	mu     sync.Mutex
	cond   *sync.Cond
	buf    []int16
	r, w   int
	n      int
	closed bool
}

func newSampleRing(size int) *sampleRing {
	if size < 1 {
		size = 1
	}
	q := &sampleRing{buf: make([]int16, size)}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push blocks while the ring is full. It drops the sample once closed.
func (q *sampleRing) push(s int16) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for !q.closed && q.n == len(q.buf) {
		q.cond.Wait()
	}
	if q.closed {
		return false
	}
	q.buf[q.w] = s
	q.w = (q.w + 1) % len(q.buf)
	q.n++
	q.cond.Broadcast()
	return true
}

// pop blocks while the ring is empty. ok is false once closed.
func (q *sampleRing) pop() (s int16, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for !q.closed && q.n == 0 {
		q.cond.Wait()
	}
	if q.closed {
		return 0, false
	}
	s = q.buf[q.r]
	q.r = (q.r + 1) % len(q.buf)
	q.n--
	q.cond.Broadcast()
	return s, true
}

func (q *sampleRing) pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.n
}

func (q *sampleRing) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.n, q.r, q.w = 0, 0, 0
	q.cond.Broadcast()
}
