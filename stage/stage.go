// Package stage tracks the coarse game phase (Intro, Game, End) and the two
// overlay fade ramps tied to it. Transitions are forward-only and their side
// effects are idempotent: re-signaling a transition never restarts a ramp or
// replays the outro cue.
package stage

import (
	"chosenoffset.com/wander/internal/platform"
)

// State is the coarse game phase.
type State int

const (
	StateIntro State = iota
	StateGame
	StateEnd
)

// String returns a readable name for the state
func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateGame:
		return "game"
	case StateEnd:
		return "end"
	default:
		return "unknown"
	}
}

const (
	// fadeRate is the fade ramp slope in units per second.
	fadeRate = 0.5

	// secondaryIntroCeiling is the in-game overlay ceiling before the stage
	// reaches Game.
	secondaryIntroCeiling = 0.4

	// fullCeiling is the ceiling once a ramp is fully released.
	fullCeiling = 1.0

	// endMusicVolume ducks the ambient track under the outro cue.
	endMusicVolume = 0.3
)

// ramp is a monotonically increasing scalar in [0, ceiling].
type ramp struct {
	value   float32
	ceiling float32
}

func (r *ramp) advance(dt float32) {
	if r.value >= r.ceiling {
		return
	}
	r.value += fadeRate * dt
	if r.value > r.ceiling {
		r.value = r.ceiling
	}
}

// raise lifts the ceiling; ceilings never drop, so values never regress.
func (r *ramp) raise(ceiling float32) {
	if ceiling > r.ceiling {
		r.ceiling = ceiling
	}
}

// Controller is the stage state machine. All methods are called from the
// frame-loop goroutine.
type Controller struct {
	state State

	// primary drives the end-splash overlay; it only starts ramping once
	// the stage reaches End.
	primary ramp

	// secondary drives the in-game overlay.
	secondary ramp

	music        platform.Sound
	outro        platform.Sound
	musicStarted bool
	outroStarted bool
}

// NewController creates a stage controller in the Intro state.
func NewController() *Controller {
	return &Controller{
		state:     StateIntro,
		secondary: ramp{ceiling: secondaryIntroCeiling},
	}
}

// SetMusic assigns the looping ambient track. May arrive after the stage
// has already entered Game; playback then starts on the next Update.
func (c *Controller) SetMusic(s platform.Sound) { c.music = s }

// SetOutro assigns the one-shot outro cue played when the stage ends.
func (c *Controller) SetOutro(s platform.Sound) { c.outro = s }

// State returns the current stage.
func (c *Controller) State() State { return c.state }

// SignalGame transitions Intro to Game. Signals from any later state are
// ignored; transitions never regress.
func (c *Controller) SignalGame() {
	if c.state != StateIntro {
		return
	}
	c.state = StateGame
	c.secondary.raise(fullCeiling)
}

// SignalEnd transitions to End. Repeat signals are no-ops.
func (c *Controller) SignalEnd() {
	if c.state == StateEnd {
		return
	}
	c.state = StateEnd
	c.primary.raise(fullCeiling)
	if c.music != nil {
		c.music.SetVolume(endMusicVolume)
	}
}

// Update advances the fade ramps and starts any stage-gated audio whose
// resource has become available.
func (c *Controller) Update(dt float32) {
	c.primary.advance(dt)
	c.secondary.advance(dt)

	if c.state >= StateGame && c.music != nil && !c.musicStarted {
		c.music.Play()
		c.musicStarted = true
	}
	if c.state == StateEnd && c.outro != nil && !c.outroStarted {
		c.outro.Play()
		c.outroStarted = true
	}
}

// PrimaryFade returns the end-splash overlay opacity in [0, 1].
func (c *Controller) PrimaryFade() float32 { return c.primary.value }

// SecondaryFade returns the in-game overlay opacity in [0, 1].
func (c *Controller) SecondaryFade() float32 { return c.secondary.value }

// SecondaryVisible reports whether the in-game overlay should draw at all.
// Entering End force-hides it in favor of the end splash.
func (c *Controller) SecondaryVisible() bool { return c.state != StateEnd }

// MovementAllowed reports whether player movement may commit this frame.
func (c *Controller) MovementAllowed() bool { return c.state != StateEnd }
