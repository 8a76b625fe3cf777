package game

import (
	"chosenoffset.com/wander/internal/platform"
)

// Draw renders one frame: the lit 3D pass in scene order, then the overlay
// fades on top (painter's algorithm).
func (g *Game) Draw(r platform.Renderer) {
	if spot, ok := g.Lights.PlayerSpot(); ok {
		r.SetSpotlight(spot)
	}

	r.Begin3D(g.Player.Camera())
	for _, e := range g.Entities {
		e.Draw(r)
	}
	r.End3D()

	// The in-game overlay darkens the scene until its ramp releases; the
	// end splash fades in over everything once the stage ends.
	if g.Stage.SecondaryVisible() {
		r.DrawFade(1 - g.Stage.SecondaryFade())
	}
	if p := g.Stage.PrimaryFade(); p > 0 {
		r.DrawFade(p)
	}
}
