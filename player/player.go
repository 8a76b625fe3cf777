// Package player owns the first-person controller: position, yaw/pitch, a
// damped acceleration vector fed by directional input, collision resolution
// against the entity set, footstep audio gating, and the derived camera and
// hand-light poses.
package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/wander/entity"
	"chosenoffset.com/wander/internal/platform"
	"chosenoffset.com/wander/stage"
)

const (
	// inputGain scales clamped input into acceleration per second.
	inputGain = 0.25

	// decayFactor damps the acceleration every frame, producing smooth
	// accelerate/decelerate motion instead of instant velocity.
	decayFactor = 0.9

	// lookSensitivity converts look-axis deltas to radians.
	lookSensitivity = 0.0032

	// footstepEpsilon is the per-frame speed below which footsteps stop.
	footstepEpsilon = 0.002

	eyeHeight  = 1.7
	handHeight = 1.25

	bobFrequency = 9.0
	bobAmplitude = 0.04

	fovY = 70.0
)

// Input is one frame of directional and look input. Strafe is right minus
// left, Forward is forward minus backward; look values are pointer deltas.
type Input struct {
	Strafe  float32
	Forward float32
	LookX   float32
	LookY   float32
}

// Controller is the player state. All methods run on the frame-loop
// goroutine.
type Controller struct {
	position mgl32.Vec3
	yaw      float32
	pitch    float32

	accel  mgl32.Vec3
	travel float32

	footsteps platform.Sound
}

// NewController creates a controller at the given spawn position and yaw.
func NewController(spawn mgl32.Vec3, yaw float32) *Controller {
	return &Controller{position: spawn, yaw: yaw}
}

// SetFootsteps assigns the looping footstep sound. May arrive after frames
// have already run; gating picks it up on the next step.
func (c *Controller) SetFootsteps(s platform.Sound) { c.footsteps = s }

// Position returns the player's world position.
func (c *Controller) Position() mgl32.Vec3 { return c.position }

// Acceleration returns the current damped acceleration vector.
func (c *Controller) Acceleration() mgl32.Vec3 { return c.accel }

// Yaw returns the horizontal orientation in radians.
func (c *Controller) Yaw() float32 { return c.yaw }

// Pitch returns the vertical orientation in radians. Pitch is not clamped;
// the camera can rotate past vertical exactly as the original behaves.
func (c *Controller) Pitch() float32 { return c.pitch }

// ClampInput rescales an input vector so its magnitude never exceeds 1.
// Shorter vectors pass through unchanged.
func ClampInput(strafe, forward float32) (float32, float32) {
	mag := float32(math.Hypot(float64(strafe), float64(forward)))
	if mag <= 1 {
		return strafe, forward
	}
	return strafe / mag, forward / mag
}

// Step advances the controller by one frame: orientation from look input,
// acceleration from directional input, then collision resolution against
// the entity set.
func (c *Controller) Step(in Input, dt float32, world []*entity.Entity, st *stage.Controller) {
	c.yaw -= in.LookX * lookSensitivity
	c.pitch -= in.LookY * lookSensitivity

	strafe, forward := ClampInput(in.Strafe, in.Forward)
	intent := c.right().Mul(strafe).Add(c.forwardFlat().Mul(forward))

	c.accel = c.accel.Add(intent.Mul(dt * inputGain))
	c.accel = c.accel.Mul(decayFactor)

	if st.State() == stage.StateIntro {
		// The first nonzero input wakes the stage; movement itself starts
		// on the following frame.
		if c.accel.Len() > 0 {
			st.SignalGame()
		}
		c.accel = mgl32.Vec3{}
		c.stopFootsteps()
		return
	}

	candidate := c.position.Add(c.accel)

	// Every entity sees the candidate point: sound areas refresh their
	// containment flag even when an earlier entity already blocked.
	blocked := false
	for _, e := range world {
		if _, allow := e.Collides(candidate); !allow {
			blocked = true
		}
	}

	if blocked {
		// Elastic recoil: invert rather than zero, so the player visibly
		// bounces off the obstacle.
		c.accel = c.accel.Mul(-1)
		return
	}

	if !st.MovementAllowed() {
		c.stopFootsteps()
		return
	}

	c.position = candidate
	speed := c.accel.Len()
	c.travel += speed

	if speed > footstepEpsilon {
		c.startFootsteps()
	} else {
		c.stopFootsteps()
	}
}

func (c *Controller) startFootsteps() {
	if c.footsteps != nil && !c.footsteps.Playing() {
		c.footsteps.Play()
	}
}

func (c *Controller) stopFootsteps() {
	if c.footsteps != nil && c.footsteps.Playing() {
		c.footsteps.Stop()
	}
}

// right returns the world-space right axis for the current yaw.
func (c *Controller) right() mgl32.Vec3 {
	sin, cos := math.Sincos(float64(c.yaw))
	return mgl32.Vec3{float32(cos), 0, float32(-sin)}
}

// forwardFlat returns the world-space forward axis for the current yaw,
// ignoring pitch. Yaw zero faces -Z.
func (c *Controller) forwardFlat() mgl32.Vec3 {
	sin, cos := math.Sincos(float64(c.yaw))
	return mgl32.Vec3{float32(-sin), 0, float32(-cos)}
}

// LookDirection returns the normalized view direction from yaw and pitch.
func (c *Controller) LookDirection() mgl32.Vec3 {
	sy, cy := math.Sincos(float64(c.yaw))
	sp, cp := math.Sincos(float64(c.pitch))
	return mgl32.Vec3{
		float32(-sy * cp),
		float32(sp),
		float32(-cy * cp),
	}
}

// Camera derives the frame's camera pose: eye at head height plus the
// travel-driven bob offset, looking along the view direction.
func (c *Controller) Camera() platform.Camera {
	bob := bobAmplitude * float32(math.Sin(float64(c.travel)*bobFrequency))
	eye := c.position.Add(mgl32.Vec3{0, eyeHeight + bob, 0})
	return platform.Camera{
		Eye:    eye,
		Target: eye.Add(c.LookDirection()),
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   fovY,
	}
}

// HandPosition returns the anchor for the player-attached spotlight,
// slightly forward of the body at hand height.
func (c *Controller) HandPosition() mgl32.Vec3 {
	return c.position.
		Add(mgl32.Vec3{0, handHeight, 0}).
		Add(c.forwardFlat().Mul(0.3))
}
