package balloons

import "sync"

// clickQueue is a goroutine-safe append queue of click positions.
type clickQueue struct {
	mu      sync.Mutex
	pending []Vec2
	buf     []Vec2
}

func (q *clickQueue) push(p Vec2) {
	q.mu.Lock()
	q.pending = append(q.pending, p)
	q.mu.Unlock()
}

// take swaps out the pending clicks. The returned slice is only valid until
// the next call.
func (q *clickQueue) take() []Vec2 {
	q.mu.Lock()
	q.pending, q.buf = q.buf[:0], q.pending
	q.mu.Unlock()
	return q.buf
}

func (q *clickQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// InjectClick queues a click at (x, y). It is safe to call from any
// goroutine; queued clicks are applied in order at the start of the next
// Step or Frame.
func (s *Scene) InjectClick(x, y float64) {
	s.injectQueue.push(Vec2{X: x, Y: y})
}

// PendingClicks returns how many injected clicks are waiting for the next frame.
func (s *Scene) PendingClicks() int {
	return s.injectQueue.len()
}

// drainInjected applies every queued click via Click.
func (s *Scene) drainInjected() {
	for _, p := range s.injectQueue.take() {
		s.Click(p.X, p.Y)
	}
}
