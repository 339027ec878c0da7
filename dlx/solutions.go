package dlx

import (
	"context"
	"fmt"
	"sync"
)

// Solutions is a pull-driven, cancellable iterator over the raw
// solutions of a Matrix's exact-cover search. The search recursion
// runs on a dedicated goroutine; each leaf blocks on a rendezvous
// send until the caller pulls it via Next, and blocks again waiting
// for the caller's go-ahead before resuming the search. Stop (or a
// cancelled context passed to Next) releases any pending rendezvous
// and lets the goroutine unwind and exit — the matrix is abandoned at
// whatever partial-cover state it was in. A stopped Solutions must
// never be resumed: the search does not re-enter.
type Solutions struct {
	out    chan []int32
	resume chan struct{}
	stop   chan struct{}
	done   chan struct{}

	stopOnce sync.Once
}

// NewSolutions starts the search over m on a new goroutine and returns
// an iterator over its raw solutions. m must not be used concurrently
// by anything else while the iterator is live.
func NewSolutions(m *Matrix) *Solutions {
	s := &Solutions{
		out:    make(chan []int32),
		resume: make(chan struct{}),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go s.run(m)
	return s
}

func (s *Solutions) run(m *Matrix) {
	defer close(s.done)
	defer close(s.out)

	emit := func(sol []int32) bool {
		select {
		case s.out <- sol:
		case <-s.stop:
			return false
		}
		select {
		case <-s.resume:
			return true
		case <-s.stop:
			return false
		}
	}
	m.search(nil, emit)
}

// Next blocks until the next raw solution is available, the search is
// exhausted, or ctx is cancelled. On exhaustion it returns (nil,
// false, nil). On cancellation it stops the search and returns an
// error wrapping both ErrSearchAborted and ctx.Err(): with (nil,
// false) if no solution was received, or with the received solution
// and true if the cancellation was seen while handing that solution
// back.
func (s *Solutions) Next(ctx context.Context) ([]int, bool, error) {
	select {
	case sol, ok := <-s.out:
		if !ok {
			return nil, false, nil
		}
		result := make([]int, len(sol))
		for i, v := range sol {
			result[i] = int(v)
		}
		select {
		case s.resume <- struct{}{}:
			return result, true, nil
		case <-ctx.Done():
			s.Stop()
			return result, true, fmt.Errorf("%w: %w", ErrSearchAborted, ctx.Err())
		}
	case <-ctx.Done():
		s.Stop()
		return nil, false, fmt.Errorf("%w: %w", ErrSearchAborted, ctx.Err())
	}
}

// Stop requests early termination and releases the search goroutine.
// Safe to call multiple times and safe to call after exhaustion.
func (s *Solutions) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
		go func() {
			for range s.out { // drain any in-flight send so run() can exit
			}
		}()
	})
}
