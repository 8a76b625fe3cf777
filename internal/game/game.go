// Package game owns the frame loop: one update pass per frame in fixed
// order (loader drain, entities, player movement, stage fades, dynamic
// light), followed by one render pass. All mutable state is touched only
// from this loop; the loader's completion channel is the single
// cross-goroutine edge.
package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/wander/entity"
	"chosenoffset.com/wander/internal/platform"
	"chosenoffset.com/wander/lighting"
	"chosenoffset.com/wander/player"
	"chosenoffset.com/wander/sceneloader"
	"chosenoffset.com/wander/stage"
)

// Game holds all runtime state for a loaded scene.
type Game struct {
	SceneName string

	Entities []*entity.Entity
	Player   *player.Controller
	Stage    *stage.Controller
	Lights   *lighting.Manager

	Loader platform.ResourceLoader
	Input  platform.Input
}

// New assembles a game from a validated scene: builds the entity list,
// places the player at the spawn, and starts the asynchronous loads for
// the scene-level sounds.
func New(scene *sceneloader.SceneData, loader platform.ResourceLoader, input platform.Input, drivers sceneloader.DriverFactory) *Game {
	st := stage.NewController()

	spawn := scene.PlayerSpawn
	pc := player.NewController(
		mgl32.Vec3{spawn.Position[0], spawn.Position[1], spawn.Position[2]},
		mgl32.DegToRad(spawn.Yaw),
	)

	g := &Game{
		SceneName: scene.Name,
		Player:    pc,
		Stage:     st,
		Lights:    lighting.NewManager(),
		Loader:    loader,
		Input:     input,
	}

	g.Entities = sceneloader.BuildEntities(scene, loader, drivers, st.SignalEnd)

	if scene.Music != "" {
		loader.LoadSound(scene.Music, true, st.SetMusic)
	}
	if scene.OutroSound != "" {
		loader.LoadSound(scene.OutroSound, false, st.SetOutro)
	}
	if scene.FootstepSound != "" {
		loader.LoadSound(scene.FootstepSound, true, pc.SetFootsteps)
	}

	return g
}

// Update runs one frame of game logic.
func (g *Game) Update(dt float32) error {
	// Completed resource loads land before the entity list is used, so the
	// rest of the frame sees a stable world.
	g.Loader.Drain()

	for _, e := range g.Entities {
		e.Update(dt)
	}

	in := player.Input{
		Strafe:  g.Input.Axis(platform.ControlRight) - g.Input.Axis(platform.ControlLeft),
		Forward: g.Input.Axis(platform.ControlForward) - g.Input.Axis(platform.ControlBackward),
		LookX:   g.Input.Axis(platform.ControlLookX),
		LookY:   g.Input.Axis(platform.ControlLookY),
	}
	g.Player.Step(in, dt, g.Entities, g.Stage)

	g.Stage.Update(dt)

	g.Lights.UpdatePlayerSpot(g.Player.HandPosition(), g.Player.LookDirection())

	return nil
}

// Dispose tears the scene down, releasing entity resources and waiting out
// in-flight loads.
func (g *Game) Dispose() {
	for _, e := range g.Entities {
		e.Dispose()
	}
	g.Loader.Shutdown()
}
