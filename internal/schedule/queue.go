package schedule

import (
	"container/heap"
	"time"
)

type event struct {
	at  time.Duration
	seq uint64
	fn  func()
}

type events []*event

func (e events) Len() int { return len(e) }
func (e events) Less(i, j int) bool {
	if e[i].at == e[j].at {
		return e[i].seq < e[j].seq
	}
	return e[i].at < e[j].at
}
func (e events) Swap(i, j int) { e[i], e[j] = e[j], e[i] }
func (e *events) Push(x interface{}) {
	*e = append(*e, x.(*event))
}
func (e *events) Pop() interface{} {
	old := *e
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*e = old[:n-1]
	return ev
}

// Queue holds callbacks keyed by game time. It is drained by the update
// step, so callbacks never run concurrently with game logic.
type Queue struct {
	events events
	seq    uint64
}

// At schedules fn to fire on the first Drain at or after t.
func (q *Queue) At(t time.Duration, fn func()) {
	q.seq++
	heap.Push(&q.events, &event{at: t, seq: q.seq, fn: fn})
}

// Drain fires every due event in time order, ties in scheduling order.
// Events scheduled by a callback for a time <= now fire in the same drain.
func (q *Queue) Drain(now time.Duration) int {
	fired := 0
	for len(q.events) > 0 && q.events[0].at <= now {
		ev := heap.Pop(&q.events).(*event)
		ev.fn()
		fired++
	}
	return fired
}

// Clear cancels every pending event.
func (q *Queue) Clear() {
	q.events = nil
}

func (q *Queue) Len() int {
	return len(q.events)
}
