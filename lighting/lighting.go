// Package lighting owns the dynamic lights of the scene. The player's
// spotlight lives in a single slot that is rewritten in place every frame;
// nothing is ever removed from or re-added to a shared collection, so stale
// or duplicate lights cannot accumulate.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/wander/internal/platform"
)

// Player spotlight constants. The cone angles are half-angles in degrees.
const (
	playerInnerCone = 12.5
	playerOuterCone = 17.5
	playerIntensity = 1.0
)

var playerColor = [3]float32{1.0, 0.95, 0.85}

// Manager holds the scene's dynamic lights.
type Manager struct {
	player platform.Spotlight
	active bool
}

// NewManager creates a lighting manager with the player spotlight dark.
func NewManager() *Manager {
	return &Manager{
		player: platform.Spotlight{
			InnerCone: playerInnerCone,
			OuterCone: playerOuterCone,
			Color:     playerColor,
		},
	}
}

// UpdatePlayerSpot rewrites the player spotlight slot with this frame's
// hand position and look direction. Unconditional: the slot is replaced
// every frame regardless of visibility.
func (m *Manager) UpdatePlayerSpot(pos, dir mgl32.Vec3) {
	m.player.Position = pos
	m.player.Direction = dir
	m.player.Intensity = playerIntensity
	m.active = true
}

// PlayerSpot returns the current player spotlight and whether it has been
// populated since startup.
func (m *Manager) PlayerSpot() (platform.Spotlight, bool) {
	return m.player, m.active
}
