package snake

import "time"

// timerKind names one conceptual timer. Each kind owns a single slot,
// so re-arming replaces the previous deadline.
type timerKind int

const (
	timerTick timerKind = iota
	timerExpire
	timerEffect
	timerSpeedFlash
	timerGameOverFlash
	numTimers
)

func (k timerKind) String() string {
	switch k {
	case timerTick:
		return "tick"
	case timerExpire:
		return "expire"
	case timerEffect:
		return "effect"
	case timerSpeedFlash:
		return "speed_flash"
	case timerGameOverFlash:
		return "game_over_flash"
	default:
		return "unknown"
	}
}

// timer is an armed deadline. gen is the session it belongs to and seq
// ties it to the item or effect activation that armed it.
type timer struct {
	at    time.Time
	gen   uint64
	seq   uint64
	armed bool
}

// scheduler is a virtual-time timer set. Nothing fires on its own; the
// owner pops due timers while advancing its clock.
type scheduler struct {
	slots [numTimers]timer
	gen   uint64
}

// newGeneration cancels everything and starts a new session token.
func (s *scheduler) newGeneration() uint64 {
	s.cancelAll()
	s.gen++
	return s.gen
}

func (s *scheduler) schedule(k timerKind, at time.Time, seq uint64) {
	s.slots[k] = timer{at: at, gen: s.gen, seq: seq, armed: true}
}

func (s *scheduler) cancel(k timerKind) {
	s.slots[k] = timer{}
}

func (s *scheduler) cancelAll() {
	for k := range s.slots {
		s.slots[k] = timer{}
	}
}

func (s *scheduler) armed(k timerKind) bool {
	return s.slots[k].armed
}

func (s *scheduler) deadline(k timerKind) (time.Time, bool) {
	t := s.slots[k]
	return t.at, t.armed
}

// next returns the earliest armed deadline.
func (s *scheduler) next() (time.Time, bool) {
	var (
		at    time.Time
		found bool
	)
	for _, t := range s.slots {
		if t.armed && (!found || t.at.Before(at)) {
			at, found = t.at, true
		}
	}
	return at, found
}

// popDue disarms and returns the earliest timer due at or before now.
// Ties resolve in slot order, so movement runs before expiry.
func (s *scheduler) popDue(now time.Time) (timerKind, timer, bool) {
	best := timerKind(-1)
	for k, t := range s.slots {
		if !t.armed || t.at.After(now) {
			continue
		}
		if best < 0 || t.at.Before(s.slots[best].at) {
			best = timerKind(k)
		}
	}
	if best < 0 {
		return 0, timer{}, false
	}
	t := s.slots[best]
	s.slots[best] = timer{}
	return best, t, true
}

// shift delays every armed deadline by d.
func (s *scheduler) shift(d time.Duration) {
	for k := range s.slots {
		if s.slots[k].armed {
			s.slots[k].at = s.slots[k].at.Add(d)
		}
	}
}
