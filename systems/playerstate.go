package systems

import (
	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// actor is the capability surface a player state works through. States
// never touch the entity directly; they read input and ground contact
// and request movement, jumps, and shots.
type actor interface {
	Held(a cfg.ActionID) bool
	JustPressed(a cfg.ActionID) bool
	Grounded() bool

	Move(direction float64) // horizontal run intent for this frame
	Jump()
	TryShoot() bool        // fires if the shared cooldown allows it
	CooldownElapsed() bool // since the last shot
	StepAnimation()        // advance the walk cycle on its own interval
}

// playerState is one of the six mutually exclusive behavior states.
// Update runs once per frame and returns the state to be in next
// frame; returning the current state means no transition.
type playerState interface {
	Update(a actor) cfg.StateID
}

var playerStates = map[cfg.StateID]playerState{
	cfg.StateIdle:            idleState{},
	cfg.StateRunning:         runningState{},
	cfg.StateJumping:         jumpingState{},
	cfg.StateShooting:        shootingState{},
	cfg.StateRunningShooting: runningShootingState{},
	cfg.StateJumpShooting:    jumpShootingState{},
}

// direction reads the held directional input as a facing value, zero
// when neither or both directions are held.
func direction(a actor) float64 {
	switch {
	case a.Held(cfg.ActionMoveLeft) && !a.Held(cfg.ActionMoveRight):
		return cfg.DirectionLeft
	case a.Held(cfg.ActionMoveRight) && !a.Held(cfg.ActionMoveLeft):
		return cfg.DirectionRight
	}
	return 0
}

// groundStateFor picks Running or Idle from the held input, the shared
// landing decision of Jumping and JumpShooting.
func groundStateFor(a actor) cfg.StateID {
	if direction(a) != 0 {
		return cfg.StateRunning
	}
	return cfg.StateIdle
}

type idleState struct{}

func (idleState) Update(a actor) cfg.StateID {
	if a.JustPressed(cfg.ActionJump) && a.Grounded() {
		a.Jump()
		return cfg.StateJumping
	}
	if a.JustPressed(cfg.ActionFire) && a.TryShoot() {
		return cfg.StateShooting
	}
	if direction(a) != 0 {
		return cfg.StateRunning
	}
	return cfg.StateIdle
}

type runningState struct{}

func (runningState) Update(a actor) cfg.StateID {
	dir := direction(a)
	if dir == 0 {
		return cfg.StateIdle
	}
	a.Move(dir)
	a.StepAnimation()

	if a.JustPressed(cfg.ActionJump) && a.Grounded() {
		a.Jump()
		return cfg.StateJumping
	}
	if a.JustPressed(cfg.ActionFire) && a.TryShoot() {
		return cfg.StateRunningShooting
	}
	return cfg.StateRunning
}

type jumpingState struct{}

func (jumpingState) Update(a actor) cfg.StateID {
	// Landing is an externally driven edge: the collision resolver
	// clears airborne, and this update observes it a frame later.
	if a.Grounded() {
		return groundStateFor(a)
	}
	if dir := direction(a); dir != 0 {
		a.Move(dir)
	}
	if a.JustPressed(cfg.ActionFire) && a.TryShoot() {
		return cfg.StateJumpShooting
	}
	return cfg.StateJumping
}

type shootingState struct{}

func (shootingState) Update(a actor) cfg.StateID {
	if a.CooldownElapsed() {
		return cfg.StateIdle
	}
	return cfg.StateShooting
}

type runningShootingState struct{}

func (runningShootingState) Update(a actor) cfg.StateID {
	if dir := direction(a); dir != 0 {
		a.Move(dir)
	}
	a.StepAnimation()

	if a.CooldownElapsed() {
		return groundStateFor(a)
	}
	return cfg.StateRunningShooting
}

type jumpShootingState struct{}

func (jumpShootingState) Update(a actor) cfg.StateID {
	if dir := direction(a); dir != 0 {
		a.Move(dir)
	}
	a.StepAnimation()

	if a.CooldownElapsed() {
		if a.Grounded() {
			return groundStateFor(a)
		}
		return cfg.StateJumping
	}
	return cfg.StateJumpShooting
}

// UpdatePlayerStates runs each player's active state and applies the
// requested transition. Exactly one state is active per player.
func UpdatePlayerStates(ecs *ecs.ECS) {
	session := GetSession(ecs)
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		state := components.State.Get(e)

		a := &playerActor{ecs: ecs, entry: e, session: session}
		a.beginFrame()

		current := playerStates[state.CurrentState]
		if current == nil {
			state.CurrentState = cfg.StateIdle
			current = playerStates[cfg.StateIdle]
		}
		next := current.Update(a)

		if next != state.CurrentState {
			cfg.Logger().Debug("player state transition",
				"from", state.CurrentState, "to", next)
			state.PreviousState = state.CurrentState
			state.CurrentState = next
			state.StateTimer = 0
		} else {
			state.StateTimer++
		}
	})
}
