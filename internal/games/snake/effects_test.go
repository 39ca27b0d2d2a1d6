package snake

import (
	"testing"
	"time"
)

func TestEffectsSpeedNoDrift(t *testing.T) {
	e := NewEffects(80*time.Millisecond, 7*time.Second, 2)

	e.Activate(PowerUpSpeed, t0)
	if e.Interval() != 40*time.Millisecond {
		t.Fatalf("interval = %v, expected 40ms", e.Interval())
	}
	if superseded := e.Activate(PowerUpSpeed, at(time.Second)); superseded != PowerUpSpeed {
		t.Errorf("superseded = %v, expected speed", superseded)
	}
	if e.Interval() != 40*time.Millisecond {
		t.Errorf("re-trigger interval = %v, expected 40ms", e.Interval())
	}

	if !e.Revert(PowerUpSpeed) {
		t.Fatal("Revert(speed) reported nothing to revert")
	}
	if e.Interval() != 80*time.Millisecond {
		t.Errorf("reverted interval = %v, expected 80ms", e.Interval())
	}
	if e.Revert(PowerUpSpeed) {
		t.Error("second Revert should be a no-op")
	}
}

func TestEffectsSupersede(t *testing.T) {
	e := NewEffects(80*time.Millisecond, 7*time.Second, 2)

	e.Activate(PowerUpDoublePoints, t0)
	if e.Multiplier() != 2 {
		t.Fatalf("multiplier = %d, expected 2", e.Multiplier())
	}

	if superseded := e.Activate(PowerUpSpeed, at(time.Second)); superseded != PowerUpDoublePoints {
		t.Errorf("superseded = %v, expected double points", superseded)
	}
	if e.Multiplier() != 1 {
		t.Errorf("double points not reverted: multiplier = %d", e.Multiplier())
	}
	if e.Interval() != 40*time.Millisecond {
		t.Errorf("interval = %v, expected 40ms", e.Interval())
	}

	eff, ok := e.Active()
	if !ok || eff.Kind != PowerUpSpeed || eff.Baseline != int64(80*time.Millisecond) {
		t.Errorf("active = %+v, %v", eff, ok)
	}
	if e.Revert(PowerUpDoublePoints) {
		t.Error("reverting an inactive kind must do nothing")
	}
}

func TestActiveEffectRemaining(t *testing.T) {
	e := NewEffects(80*time.Millisecond, 7*time.Second, 2)
	e.Activate(PowerUpDoublePoints, t0)
	eff, _ := e.Active()

	if got := eff.Remaining(at(2 * time.Second)); got != 5*time.Second {
		t.Errorf("remaining = %v, expected 5s", got)
	}
	if got := eff.Remaining(at(time.Minute)); got != 0 {
		t.Errorf("remaining after expiry = %v, expected 0", got)
	}

	e.shift(time.Second)
	eff, _ = e.Active()
	if !eff.ExpiresAt.Equal(at(8 * time.Second)) {
		t.Errorf("shifted expiry = %v", eff.ExpiresAt.Sub(t0))
	}
}
