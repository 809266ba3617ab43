package schedule

import (
	"testing"
	"time"
)

func TestDrainOrder(t *testing.T) {
	var q Queue
	fired := []int{}
	q.At(30*time.Millisecond, func() { fired = append(fired, 3) })
	q.At(10*time.Millisecond, func() { fired = append(fired, 1) })
	q.At(20*time.Millisecond, func() { fired = append(fired, 2) })
	q.At(20*time.Millisecond, func() { fired = append(fired, 22) })

	if n := q.Drain(5 * time.Millisecond); n != 0 {
		t.Fatalf("nothing is due yet, %v fired", n)
	}
	if n := q.Drain(20 * time.Millisecond); n != 3 {
		t.Fatalf("expected three events, %v fired", n)
	}
	expected := []int{1, 2, 22}
	for i := range expected {
		if fired[i] != expected[i] {
			t.Log("fired   ", fired)
			t.Log("expected", expected)
			t.FailNow()
		}
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %v, want 1", q.Len())
	}
}

func TestClearCancels(t *testing.T) {
	var q Queue
	fired := false
	q.At(time.Millisecond, func() { fired = true })
	q.Clear()
	q.Drain(time.Hour)
	if fired || q.Len() != 0 {
		t.Error("cleared event fired")
	}
}

func TestScheduleFromCallback(t *testing.T) {
	var q Queue
	count := 0
	q.At(0, func() {
		count++
		q.At(0, func() { count++ })
		q.At(time.Second, func() { count++ })
	})
	q.Drain(0)
	if count != 2 || q.Len() != 1 {
		t.Errorf("count = %v, pending = %v", count, q.Len())
	}
}
