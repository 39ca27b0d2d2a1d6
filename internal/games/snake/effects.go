package snake

import "time"

// ActiveEffect is the live power-up modifier.
// Baseline is the tick interval (Speed) or score multiplier (DoublePoints)
// that Revert restores.
type ActiveEffect struct {
	Kind      PowerUpKind
	ExpiresAt time.Time
	Baseline  int64
	seq       uint64
}

// Remaining returns the time left before the effect reverts.
func (e ActiveEffect) Remaining(now time.Time) time.Duration {
	if d := e.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Effects applies and reverts timed modifiers. At most one is active.
type Effects struct {
	base             time.Duration // Interval implied by the current difficulty
	interval         time.Duration
	multiplier       int
	doubleMultiplier int
	duration         time.Duration
	active           *ActiveEffect
	seq              uint64
}

// NewEffects creates an engine with no active effect.
func NewEffects(base, duration time.Duration, doubleMultiplier int) *Effects {
	return &Effects{
		base:             base,
		interval:         base,
		multiplier:       1,
		doubleMultiplier: max(doubleMultiplier, 1),
		duration:         duration,
	}
}

// Interval returns the current tick interval.
func (e *Effects) Interval() time.Duration {
	return e.interval
}

// Multiplier returns the current score multiplier.
func (e *Effects) Multiplier() int {
	return e.multiplier
}

// Active returns the live effect, if any.
func (e *Effects) Active() (ActiveEffect, bool) {
	if e.active == nil {
		return ActiveEffect{}, false
	}
	return *e.active, true
}

// Activate reverts whatever is active, then applies kind until now+duration.
// It returns the kind that was superseded (PowerUpNone if nothing was live).
func (e *Effects) Activate(kind PowerUpKind, now time.Time) PowerUpKind {
	superseded := PowerUpNone
	if e.active != nil {
		superseded = e.active.Kind
		e.Revert(superseded)
	}

	e.seq++
	eff := &ActiveEffect{
		Kind:      kind,
		ExpiresAt: now.Add(e.duration),
		seq:       e.seq,
	}
	switch kind {
	case PowerUpSpeed:
		eff.Baseline = int64(e.base)
		e.interval = max(e.interval/2, time.Millisecond)
	case PowerUpDoublePoints:
		eff.Baseline = int64(e.multiplier)
		e.multiplier = e.doubleMultiplier
	default:
		return superseded
	}
	e.active = eff
	return superseded
}

// Revert undoes kind. Speed returns to the difficulty interval, never to
// a multiple of the current one. Returns false when kind was not active.
func (e *Effects) Revert(kind PowerUpKind) bool {
	if e.active == nil || e.active.Kind != kind {
		return false
	}
	switch kind {
	case PowerUpSpeed:
		e.interval = e.base
	case PowerUpDoublePoints:
		e.multiplier = 1
	}
	e.active = nil
	return true
}

// activeSeq identifies the current activation for timer matching.
func (e *Effects) activeSeq() uint64 {
	if e.active == nil {
		return 0
	}
	return e.active.seq
}

// shift moves the expiry by d while the game is paused.
func (e *Effects) shift(d time.Duration) {
	if e.active != nil {
		e.active.ExpiresAt = e.active.ExpiresAt.Add(d)
	}
}
