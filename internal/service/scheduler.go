package service

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crewchat-dev/crewchat/internal/logger"
)

// Scheduler is a single queue of deferred tasks drained by one background
// loop. Tasks are plain data (fire time + closure); whatever they mutate goes
// through the same storage lock as synchronous calls, so a deferred send can
// never race an immediate send for id allocation. Once scheduled a task
// always eventually fires; there is no cancellation.
type Scheduler struct {
	mu      sync.Mutex
	clock   Clock
	tasks   taskHeap
	nextSeq int
}

type task struct {
	id     string
	fireAt time.Time
	seq    int // tie-break: schedule order for equal fire times
	run    func()
}

func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// Schedule enqueues run to fire at fireAt and returns the job id.
func (s *Scheduler) Schedule(fireAt time.Time, run func()) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	heap.Push(&s.tasks, &task{id: id, fireAt: fireAt, seq: s.nextSeq, run: run})
	s.nextSeq++
	return id
}

// Start runs the drain loop until ctx is cancelled. Delivery timing is
// best-effort within one tick of the configured interval.
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	logger.Log.Info("started deferred scheduler", "component", "scheduler", "interval", interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.FireDue()
			case <-ctx.Done():
				logger.Log.Info("deferred scheduler shutting down", "component", "scheduler")
				return
			}
		}
	}()
}

// FireDue pops and runs every task whose fire time has passed, in fire-time
// order. Tasks run outside the scheduler lock; each one serializes on the
// storage it touches. Returns how many fired.
func (s *Scheduler) FireDue() int {
	now := s.clock.Now()
	fired := 0
	for {
		s.mu.Lock()
		if len(s.tasks) == 0 || s.tasks[0].fireAt.After(now) {
			s.mu.Unlock()
			return fired
		}
		t := heap.Pop(&s.tasks).(*task)
		s.mu.Unlock()

		t.run()
		fired++
	}
}

// Pending reports queued task count.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Reset drops every queued task. Only the workspace clear path may call this.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = nil
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].fireAt.Equal(h[j].fireAt) {
		return h[i].seq < h[j].seq
	}
	return h[i].fireAt.Before(h[j].fireAt)
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(*task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
