package entity

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DriverKind distinguishes timelines that animate the entity transform from
// skeletal timelines whose joint poses are consumed inside the engine.
type DriverKind int

const (
	// DriverTransform animates the entity's position/scale/rotation.
	DriverTransform DriverKind = iota

	// DriverSkeletal animates a joint hierarchy; it never produces an
	// entity-level pose.
	DriverSkeletal
)

// Pose is a sampled transform snapshot from a timeline.
type Pose struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Rotation mgl32.Quat
}

// Driver advances an animation timeline and exposes playback state. The
// interpolation math lives behind this interface in the engine backend;
// game logic only starts, stops, and samples it.
type Driver interface {
	// Advance moves the timeline forward by dt seconds while playing.
	Advance(dt float32)

	Play()
	Stop()

	// Playing reports whether the timeline is currently advancing.
	Playing() bool

	// Position returns the elapsed timeline position in seconds. It stays
	// at its last value after playback finishes.
	Position() float32

	// Sample returns the current interpolated pose. ok is false when the
	// driver has no fresh entity-level pose this frame (never played,
	// or skeletal).
	Sample() (pose Pose, ok bool)

	// Kind reports which kind of timeline this driver plays.
	Kind() DriverKind
}
