package systems

import (
	"testing"

	cfg "github.com/grimhold/rockbuster/config"
)

// fakeActor scripts inputs and records the requests a state makes.
type fakeActor struct {
	held        map[cfg.ActionID]bool
	justPressed map[cfg.ActionID]bool
	grounded    bool
	canShoot    bool
	cooledDown  bool

	moved     []float64
	jumped    bool
	shot      bool
	animSteps int
}

func newFakeActor() *fakeActor {
	return &fakeActor{
		held:        map[cfg.ActionID]bool{},
		justPressed: map[cfg.ActionID]bool{},
		grounded:    true,
		canShoot:    true,
	}
}

func (f *fakeActor) Held(a cfg.ActionID) bool        { return f.held[a] }
func (f *fakeActor) JustPressed(a cfg.ActionID) bool { return f.justPressed[a] }
func (f *fakeActor) Grounded() bool                  { return f.grounded }
func (f *fakeActor) Move(d float64)                  { f.moved = append(f.moved, d) }
func (f *fakeActor) Jump()                           { f.jumped = true }
func (f *fakeActor) CooldownElapsed() bool           { return f.cooledDown }
func (f *fakeActor) StepAnimation()                  { f.animSteps++ }

func (f *fakeActor) TryShoot() bool {
	if !f.canShoot {
		return false
	}
	f.shot = true
	return true
}

func step(t *testing.T, from cfg.StateID, a *fakeActor) cfg.StateID {
	t.Helper()
	state, ok := playerStates[from]
	if !ok {
		t.Fatalf("no state registered for %v", from)
	}
	return state.Update(a)
}

func TestIdleTransitions(t *testing.T) {
	t.Run("stays idle without input", func(t *testing.T) {
		a := newFakeActor()
		if next := step(t, cfg.StateIdle, a); next != cfg.StateIdle {
			t.Errorf("got %v, want idle", next)
		}
	})

	t.Run("runs when a direction is held", func(t *testing.T) {
		a := newFakeActor()
		a.held[cfg.ActionMoveRight] = true
		if next := step(t, cfg.StateIdle, a); next != cfg.StateRunning {
			t.Errorf("got %v, want running", next)
		}
	})

	t.Run("opposing directions cancel", func(t *testing.T) {
		a := newFakeActor()
		a.held[cfg.ActionMoveLeft] = true
		a.held[cfg.ActionMoveRight] = true
		if next := step(t, cfg.StateIdle, a); next != cfg.StateIdle {
			t.Errorf("got %v, want idle", next)
		}
	})

	t.Run("jump wins over fire on the same frame", func(t *testing.T) {
		a := newFakeActor()
		a.justPressed[cfg.ActionJump] = true
		a.justPressed[cfg.ActionFire] = true
		if next := step(t, cfg.StateIdle, a); next != cfg.StateJumping {
			t.Errorf("got %v, want jumping", next)
		}
		if !a.jumped {
			t.Error("jump was not requested")
		}
		if a.shot {
			t.Error("shot fired while transitioning to jump")
		}
	})

	t.Run("jump press while airborne is ignored", func(t *testing.T) {
		a := newFakeActor()
		a.grounded = false
		a.justPressed[cfg.ActionJump] = true
		if next := step(t, cfg.StateIdle, a); next != cfg.StateIdle {
			t.Errorf("got %v, want idle", next)
		}
		if a.jumped {
			t.Error("airborne jump was requested")
		}
	})

	t.Run("fire enters shooting only when the cooldown allows", func(t *testing.T) {
		a := newFakeActor()
		a.justPressed[cfg.ActionFire] = true
		if next := step(t, cfg.StateIdle, a); next != cfg.StateShooting {
			t.Errorf("got %v, want shooting", next)
		}

		blocked := newFakeActor()
		blocked.canShoot = false
		blocked.justPressed[cfg.ActionFire] = true
		if next := step(t, cfg.StateIdle, blocked); next != cfg.StateIdle {
			t.Errorf("cooldown gate: got %v, want idle", next)
		}
	})
}

func TestRunningTransitions(t *testing.T) {
	t.Run("moves and animates while held", func(t *testing.T) {
		a := newFakeActor()
		a.held[cfg.ActionMoveLeft] = true
		if next := step(t, cfg.StateRunning, a); next != cfg.StateRunning {
			t.Errorf("got %v, want running", next)
		}
		if len(a.moved) != 1 || a.moved[0] != cfg.DirectionLeft {
			t.Errorf("move calls = %v, want one leftward", a.moved)
		}
		if a.animSteps != 1 {
			t.Errorf("animation stepped %d times, want 1", a.animSteps)
		}
	})

	t.Run("returns to idle when input releases", func(t *testing.T) {
		a := newFakeActor()
		if next := step(t, cfg.StateRunning, a); next != cfg.StateIdle {
			t.Errorf("got %v, want idle", next)
		}
		if len(a.moved) != 0 {
			t.Errorf("moved without input: %v", a.moved)
		}
	})

	t.Run("fire while running enters running-shooting", func(t *testing.T) {
		a := newFakeActor()
		a.held[cfg.ActionMoveRight] = true
		a.justPressed[cfg.ActionFire] = true
		if next := step(t, cfg.StateRunning, a); next != cfg.StateRunningShooting {
			t.Errorf("got %v, want running-shooting", next)
		}
	})

	t.Run("jump while running enters jumping", func(t *testing.T) {
		a := newFakeActor()
		a.held[cfg.ActionMoveRight] = true
		a.justPressed[cfg.ActionJump] = true
		if next := step(t, cfg.StateRunning, a); next != cfg.StateJumping {
			t.Errorf("got %v, want jumping", next)
		}
	})
}

func TestJumpingTransitions(t *testing.T) {
	t.Run("steers in the air without leaving the state", func(t *testing.T) {
		a := newFakeActor()
		a.grounded = false
		a.held[cfg.ActionMoveRight] = true
		if next := step(t, cfg.StateJumping, a); next != cfg.StateJumping {
			t.Errorf("got %v, want jumping", next)
		}
		if len(a.moved) != 1 || a.moved[0] != cfg.DirectionRight {
			t.Errorf("move calls = %v, want one rightward", a.moved)
		}
	})

	t.Run("landing resolves by held input", func(t *testing.T) {
		a := newFakeActor()
		a.grounded = true
		if next := step(t, cfg.StateJumping, a); next != cfg.StateIdle {
			t.Errorf("landing without input: got %v, want idle", next)
		}

		running := newFakeActor()
		running.held[cfg.ActionMoveLeft] = true
		if next := step(t, cfg.StateJumping, running); next != cfg.StateRunning {
			t.Errorf("landing while held: got %v, want running", next)
		}
	})

	t.Run("fire in the air enters jump-shooting", func(t *testing.T) {
		a := newFakeActor()
		a.grounded = false
		a.justPressed[cfg.ActionFire] = true
		if next := step(t, cfg.StateJumping, a); next != cfg.StateJumpShooting {
			t.Errorf("got %v, want jump-shooting", next)
		}
	})
}

func TestShootingStatesExitOnCooldown(t *testing.T) {
	t.Run("shooting holds until the cooldown elapses", func(t *testing.T) {
		a := newFakeActor()
		if next := step(t, cfg.StateShooting, a); next != cfg.StateShooting {
			t.Errorf("mid-cooldown: got %v, want shooting", next)
		}
		a.cooledDown = true
		if next := step(t, cfg.StateShooting, a); next != cfg.StateIdle {
			t.Errorf("after cooldown: got %v, want idle", next)
		}
	})

	t.Run("running-shooting resolves by held input", func(t *testing.T) {
		a := newFakeActor()
		a.cooledDown = true
		a.held[cfg.ActionMoveRight] = true
		if next := step(t, cfg.StateRunningShooting, a); next != cfg.StateRunning {
			t.Errorf("got %v, want running", next)
		}

		idle := newFakeActor()
		idle.cooledDown = true
		if next := step(t, cfg.StateRunningShooting, idle); next != cfg.StateIdle {
			t.Errorf("got %v, want idle", next)
		}
	})

	t.Run("jump-shooting returns to jumping while airborne", func(t *testing.T) {
		a := newFakeActor()
		a.grounded = false
		a.cooledDown = true
		if next := step(t, cfg.StateJumpShooting, a); next != cfg.StateJumping {
			t.Errorf("got %v, want jumping", next)
		}
	})

	t.Run("jump-shooting lands straight to a ground state", func(t *testing.T) {
		a := newFakeActor()
		a.grounded = true
		a.cooledDown = true
		a.held[cfg.ActionMoveLeft] = true
		if next := step(t, cfg.StateJumpShooting, a); next != cfg.StateRunning {
			t.Errorf("got %v, want running", next)
		}
	})
}
