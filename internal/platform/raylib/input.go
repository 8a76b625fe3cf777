package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"chosenoffset.com/wander/internal/platform"
)

// Input implements platform.Input over raylib's keyboard and mouse. WASD
// and the arrow keys both drive movement; look axes come from the pointer
// delta of the current frame.
type Input struct{}

// NewInput creates the raylib-backed input mapper.
func NewInput() *Input {
	return &Input{}
}

// Axis returns the activation value for a logical control.
func (i *Input) Axis(c platform.Control) float32 {
	switch c {
	case platform.ControlForward:
		return keyAxis(rl.KeyW, rl.KeyUp)
	case platform.ControlBackward:
		return keyAxis(rl.KeyS, rl.KeyDown)
	case platform.ControlLeft:
		return keyAxis(rl.KeyA, rl.KeyLeft)
	case platform.ControlRight:
		return keyAxis(rl.KeyD, rl.KeyRight)
	case platform.ControlLookX:
		return rl.GetMouseDelta().X
	case platform.ControlLookY:
		return rl.GetMouseDelta().Y
	default:
		return 0
	}
}

// JustPressed reports an edge-triggered press for a logical control.
func (i *Input) JustPressed(c platform.Control) bool {
	switch c {
	case platform.ControlQuit:
		return rl.IsKeyPressed(rl.KeyEscape)
	default:
		return false
	}
}

func keyAxis(keys ...int32) float32 {
	for _, k := range keys {
		if rl.IsKeyDown(k) {
			return 1
		}
	}
	return 0
}
