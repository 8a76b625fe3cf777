// Package platform defines the interfaces through which game logic talks to
// the underlying multimedia engine (window, 3D rendering, audio, input,
// resource loading). Game code depends only on these interfaces; the raylib
// backend lives in platform/raylib. This keeps the frame-loop logic testable
// without a window or audio device.
package platform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Model is an opaque handle to a loaded 3D model.
type Model interface {
	// ApplyTexture binds a texture as the model's albedo map. Textures
	// from a different backend are ignored.
	ApplyTexture(t Texture)
	// Dispose releases the model's GPU resources.
	Dispose()
}

// Texture is an opaque handle to a loaded texture.
type Texture interface {
	// Dispose releases the texture's GPU resources.
	Dispose()
}

// Sound is a playable audio source. Looping behavior is fixed at load time
// (streams loop, one-shots do not).
type Sound interface {
	Play()
	Stop()
	// SetVolume sets playback volume in [0, 1].
	SetVolume(volume float32)
	// Playing reports whether the sound is currently audible.
	Playing() bool
	// Dispose releases the audio resources.
	Dispose()
}

// Spotlight describes the single dynamic cone light uploaded to the
// renderer each frame.
type Spotlight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	// InnerCone and OuterCone are half-angles in degrees.
	InnerCone float32
	OuterCone float32
	Intensity float32
	Color     [3]float32
}

// Camera is a perspective camera pose for the 3D pass.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	FovY   float32
}

// Renderer issues draw calls in caller order (painter's algorithm; no
// implicit sorting beyond depth testing inside the 3D pass).
type Renderer interface {
	// SetSpotlight uploads the dynamic light used by the lit 3D pass.
	SetSpotlight(light Spotlight)

	// Begin3D starts the perspective pass with the given camera.
	Begin3D(cam Camera)

	// DrawModel draws a model with a fully resolved world transform and an
	// RGBA tint (each channel in [0, 1]).
	DrawModel(m Model, transform mgl32.Mat4, tint [4]float32)

	// End3D ends the perspective pass.
	End3D()

	// DrawFade covers the screen with a black overlay at the given opacity
	// in [0, 1]. Called after End3D.
	DrawFade(opacity float32)
}

// Control identifies a logical input channel.
type Control int

const (
	ControlForward Control = iota
	ControlBackward
	ControlLeft
	ControlRight
	ControlLookX
	ControlLookY
	ControlQuit
)

// Input exposes normalized activation values and edge-triggered presses per
// logical control. Key controls report 0 or 1; look controls report the
// pointer delta for the frame.
type Input interface {
	Axis(c Control) float32
	JustPressed(c Control) bool
}

// ResourceLoader starts asynchronous loads and delivers their results as
// assignment thunks drained on the frame-loop goroutine. Each load fails
// soft: on error it logs and the assign callback is never invoked, leaving
// the target reference absent.
type ResourceLoader interface {
	LoadModel(path string, assign func(Model))
	LoadTexture(path string, assign func(Texture))
	LoadSound(path string, loop bool, assign func(Sound))

	// Drain runs all completed assignment thunks on the calling goroutine.
	// Must be called once per frame before the entity list is used.
	Drain()

	// Shutdown waits for in-flight loads to complete and disposes anything
	// that was never assigned.
	Shutdown()
}

// Game is implemented by the frame-loop owner and driven by the engine.
type Game interface {
	// Update advances game logic by dt seconds.
	Update(dt float32) error

	// Draw renders the frame.
	Draw(r Renderer)
}

// Engine owns the window and the blocking frame loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)

	// Run drives the frame loop until the window closes or Update errors.
	Run(game Game) error
}
