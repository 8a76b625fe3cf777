// Package raylib implements the platform interfaces on top of raylib-go:
// window and frame loop, 3D rendering with an optional lighting shader,
// audio playback, input, asynchronous resource loading, and transform
// keyframe animation drivers. All raylib calls happen on the frame-loop
// goroutine; loader goroutines only touch the filesystem.
package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"chosenoffset.com/wander/internal/platform"
)

// Engine owns the raylib window and drives the frame loop.
type Engine struct {
	width    int
	height   int
	title    string
	renderer *Renderer
	audio    *Audio
}

// NewEngine creates an engine that renders through the given renderer and
// keeps the audio registry's streams fed each frame.
func NewEngine(renderer *Renderer, audio *Audio) *Engine {
	return &Engine{
		width:    1280,
		height:   720,
		title:    "wander",
		renderer: renderer,
		audio:    audio,
	}
}

// SetWindowSize sets the window size used when Run opens the window.
func (e *Engine) SetWindowSize(width, height int) {
	e.width = width
	e.height = height
}

// SetWindowTitle sets the window title used when Run opens the window.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// Run opens the window and audio device and drives the frame loop until
// the window closes or Update returns an error. Blocking.
func (e *Engine) Run(game platform.Game) error {
	rl.InitWindow(int32(e.width), int32(e.height), e.title)
	defer rl.CloseWindow()

	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()

	// Capture the pointer for mouse look.
	rl.DisableCursor()
	rl.SetTargetFPS(60)

	e.renderer.init()

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()

		e.audio.update()

		if err := game.Update(dt); err != nil {
			return err
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		game.Draw(e.renderer)
		rl.EndDrawing()
	}

	return nil
}
