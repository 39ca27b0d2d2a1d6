package snake

import (
	"testing"
	"time"
)

func TestSchedulerOrder(t *testing.T) {
	var s scheduler
	s.newGeneration()

	s.schedule(timerExpire, at(100*time.Millisecond), 1)
	s.schedule(timerTick, at(100*time.Millisecond), 0)
	s.schedule(timerEffect, at(50*time.Millisecond), 2)

	if next, ok := s.next(); !ok || !next.Equal(at(50*time.Millisecond)) {
		t.Fatalf("next() = %v, %v", next, ok)
	}

	var got []timerKind
	for {
		k, _, ok := s.popDue(at(100 * time.Millisecond))
		if !ok {
			break
		}
		got = append(got, k)
	}

	want := []timerKind{timerEffect, timerTick, timerExpire}
	if len(got) != len(want) {
		t.Fatalf("fired %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fired %v, expected %v", got, want)
			break
		}
	}
	if _, ok := s.next(); ok {
		t.Error("popped timers must be disarmed")
	}
}

func TestSchedulerNotDue(t *testing.T) {
	var s scheduler
	s.schedule(timerTick, at(time.Second), 0)

	if _, _, ok := s.popDue(at(999 * time.Millisecond)); ok {
		t.Error("timer popped before its deadline")
	}
	if _, _, ok := s.popDue(at(time.Second)); !ok {
		t.Error("timer not popped at its deadline")
	}
}

func TestSchedulerGenerationAndShift(t *testing.T) {
	var s scheduler
	gen := s.newGeneration()
	s.schedule(timerTick, at(time.Second), 0)
	s.schedule(timerEffect, at(2*time.Second), 5)

	s.shift(500 * time.Millisecond)
	if d, _ := s.deadline(timerTick); !d.Equal(at(1500 * time.Millisecond)) {
		t.Errorf("tick shifted to %v", d.Sub(t0))
	}
	if d, _ := s.deadline(timerEffect); !d.Equal(at(2500 * time.Millisecond)) {
		t.Errorf("effect shifted to %v", d.Sub(t0))
	}
	if _, ok := s.deadline(timerExpire); ok {
		t.Error("unarmed slot reported a deadline")
	}

	if next := s.newGeneration(); next != gen+1 {
		t.Errorf("generation = %d, expected %d", next, gen+1)
	}
	if _, ok := s.next(); ok {
		t.Error("new generation must cancel all timers")
	}
}
