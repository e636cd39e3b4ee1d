package config

// StateID identifies one player behavior state. Exactly one is active
// at a time.
type StateID int

const (
	StateNone StateID = iota
	StateIdle
	StateRunning
	StateJumping
	StateShooting
	StateRunningShooting
	StateJumpShooting
)

var stateNames = map[StateID]string{
	StateNone:            "NONE",
	StateIdle:            "IDLE",
	StateRunning:         "RUNNING",
	StateJumping:         "JUMPING",
	StateShooting:        "SHOOTING",
	StateRunningShooting: "RUNNING_SHOOTING",
	StateJumpShooting:    "JUMP_SHOOTING",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// StateToSpriteName maps a state to its sprite-sheet base name.
var StateToSpriteName = map[StateID]string{
	StateIdle:            "idle",
	StateRunning:         "walk",
	StateJumping:         "jump",
	StateShooting:        "shoot",
	StateRunningShooting: "walk-shoot",
	StateJumpShooting:    "jump-shoot",
}

// GolemPhase identifies the boss attack-cycle phase.
type GolemPhase int

const (
	GolemIdle GolemPhase = iota
	GolemJump
	GolemThrow
)

func (p GolemPhase) String() string {
	switch p {
	case GolemJump:
		return "JUMP"
	case GolemThrow:
		return "THROW"
	default:
		return "IDLE"
	}
}
