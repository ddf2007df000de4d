package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerFireDue(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(start)
	scheduler := NewScheduler(clock)

	var fired []string
	scheduler.Schedule(start.Add(2*time.Second), func() { fired = append(fired, "b") })
	scheduler.Schedule(start.Add(1*time.Second), func() { fired = append(fired, "a") })
	scheduler.Schedule(start.Add(3*time.Second), func() { fired = append(fired, "c") })

	// Nothing is due yet
	assert.Equal(t, 0, scheduler.FireDue())
	assert.Equal(t, 3, scheduler.Pending())

	clock.Advance(2 * time.Second)
	assert.Equal(t, 2, scheduler.FireDue())
	assert.Equal(t, []string{"a", "b"}, fired)

	clock.Advance(time.Second)
	assert.Equal(t, 1, scheduler.FireDue())
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 0, scheduler.Pending())
}

func TestSchedulerEqualFireTimesKeepScheduleOrder(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(start)
	scheduler := NewScheduler(clock)

	fireAt := start.Add(time.Second)
	var fired []int
	for i := 0; i < 5; i++ {
		i := i
		scheduler.Schedule(fireAt, func() { fired = append(fired, i) })
	}

	clock.Advance(time.Second)
	scheduler.FireDue()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, fired)
}

// Schedule order must survive pops: a task enqueued after earlier ones have
// fired still sorts behind tasks that share its fire time.
func TestSchedulerScheduleOrderAfterPops(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(start)
	scheduler := NewScheduler(clock)

	var fired []string
	scheduler.Schedule(start.Add(5*time.Second), func() { fired = append(fired, "a") })
	scheduler.Schedule(start.Add(10*time.Second), func() { fired = append(fired, "b") })

	clock.Advance(5 * time.Second)
	assert.Equal(t, 1, scheduler.FireDue())

	scheduler.Schedule(start.Add(10*time.Second), func() { fired = append(fired, "c") })

	clock.Advance(5 * time.Second)
	assert.Equal(t, 2, scheduler.FireDue())
	assert.Equal(t, []string{"a", "b", "c"}, fired)
}

func TestSchedulerFireAtExactTime(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(start)
	scheduler := NewScheduler(clock)

	fired := false
	scheduler.Schedule(start, func() { fired = true })

	// A task due exactly now fires
	assert.Equal(t, 1, scheduler.FireDue())
	assert.True(t, fired)
}

func TestSchedulerReset(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(start)
	scheduler := NewScheduler(clock)

	fired := false
	scheduler.Schedule(start.Add(time.Second), func() { fired = true })
	scheduler.Reset()

	clock.Advance(time.Minute)
	assert.Equal(t, 0, scheduler.FireDue())
	assert.False(t, fired)
	assert.Equal(t, 0, scheduler.Pending())
}
