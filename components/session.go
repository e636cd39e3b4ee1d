package components

import (
	"fmt"
	"math/rand"

	"github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/events"
	"github.com/grimhold/rockbuster/shared/gameclock"
	"github.com/yohamta/donburi"
)

// SessionData owns the cross-cutting session state: score, pause and
// end-of-level flags, the event hub, the simulation clock, and the
// random source used by the drop resolver. One exists per scene.
type SessionData struct {
	Score int
	Kills int

	Paused           bool
	GameOver         bool
	LevelComplete    bool
	RestartRequested bool

	Hub   *events.Hub
	Clock gameclock.Clock
	Rand  *rand.Rand
}

var Session = donburi.NewComponentType[SessionData]()

// AddScore credits points. Implements events.ScoreKeeper.
func (s *SessionData) AddScore(points int) {
	if points < 0 {
		return
	}
	s.Score += points
}

// FormattedScore returns the score zero-padded to the configured digit
// count for the HUD.
func (s *SessionData) FormattedScore() string {
	return fmt.Sprintf("%0*d", config.Session.ScoreDigits, s.Score)
}

// Now returns the current simulation time in milliseconds.
func (s *SessionData) Now() int64 {
	return s.Clock.Now()
}
