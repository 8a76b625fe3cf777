// Package entity provides the world-object model for the walking simulator:
// a transform with a lazily rebuilt matrix, an optional collider, a resolved
// collision action, optional proximity and one-shot sounds, and an optional
// animation driver. Entities are updated once per frame and queried during
// the player's movement resolution pass.
package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/wander/collider"
	"chosenoffset.com/wander/internal/platform"
)

// Action is the collision-triggered behavior resolved once at scene import.
// The free-form keyword string from scene data never reaches this package.
type Action int

const (
	// ActionNone is a plain obstacle or decoration; no trigger behavior.
	ActionNone Action = iota

	// ActionPlayAnimation starts the animation driver and forces the entity
	// visible when the player collides with it.
	ActionPlayAnimation

	// ActionPlaySoundOnce fires the one-shot sound the first time the
	// player collides with the entity; later collisions are no-ops.
	ActionPlaySoundOnce

	// ActionEndGameAfterwards plays the animation on collision like
	// ActionPlayAnimation, then signals the stage to end once the timeline
	// has finished.
	ActionEndGameAfterwards
)

// proximityFadeRate is the volume slope of a sound area in units per second.
const proximityFadeRate = 0.8

// Entity is a single world object.
type Entity struct {
	ID   string
	Name string

	position mgl32.Vec3
	scale    mgl32.Vec3
	rotation mgl32.Quat

	// transform is rebuilt from position/scale/rotation only when dirty.
	transform mgl32.Mat4
	dirty     bool

	Visible  bool
	Collider collider.Collider
	Action   Action
	Driver   Driver

	// OnEndTrigger is invoked while an ActionEndGameAfterwards timeline has
	// finished playing. The stage controller deduplicates repeat signals.
	OnEndTrigger func()

	// soundArea marks the entity as a proximity volume. The flag comes from
	// scene data, so dispatch precedence holds even while the sound
	// resource is still loading.
	soundArea      bool
	proxSound      platform.Sound
	proxVolume     float32
	containsPlayer bool

	// soundEvent marks the entity as carrying a one-shot cue.
	soundEvent   bool
	oneShot      platform.Sound
	oneShotFired bool

	model    platform.Model
	texture  platform.Texture
	disposed bool
}

// New creates an entity with an identity transform, no collider, and no
// trigger behavior.
func New(id, name string) *Entity {
	return &Entity{
		ID:       id,
		Name:     name,
		scale:    mgl32.Vec3{1, 1, 1},
		rotation: mgl32.QuatIdent(),
		dirty:    true,
		Visible:  true,
		Collider: collider.Empty{},
	}
}

// --- Transform ---

// Position returns the entity's world position.
func (e *Entity) Position() mgl32.Vec3 { return e.position }

// SetPosition moves the entity and marks the transform stale.
func (e *Entity) SetPosition(p mgl32.Vec3) {
	e.position = p
	e.dirty = true
}

// SetScale sets the entity scale and marks the transform stale.
func (e *Entity) SetScale(s mgl32.Vec3) {
	e.scale = s
	e.dirty = true
}

// SetRotation sets the entity orientation and marks the transform stale.
func (e *Entity) SetRotation(q mgl32.Quat) {
	e.rotation = q
	e.dirty = true
}

// Transform returns the cached world transform, rebuilding it first if any
// component changed. Draw always sees a current matrix.
func (e *Entity) Transform() mgl32.Mat4 {
	if e.dirty {
		e.rebuildTransform()
	}
	return e.transform
}

func (e *Entity) rebuildTransform() {
	e.transform = mgl32.Translate3D(e.position.X(), e.position.Y(), e.position.Z()).
		Mul4(e.rotation.Mat4()).
		Mul4(mgl32.Scale3D(e.scale.X(), e.scale.Y(), e.scale.Z()))
	e.dirty = false
}

// --- Optional features ---

// MarkSoundArea declares the entity a proximity volume before its sound
// resource has loaded.
func (e *Entity) MarkSoundArea() { e.soundArea = true }

// SetProximitySound assigns the looping sound-area resource. Called from a
// loader completion thunk; assignment only.
func (e *Entity) SetProximitySound(s platform.Sound) {
	e.soundArea = true
	e.proxSound = s
}

// MarkSoundEvent declares the entity as carrying a one-shot cue before the
// resource has loaded.
func (e *Entity) MarkSoundEvent() { e.soundEvent = true }

// SetOneShotSound assigns the one-shot cue resource.
func (e *Entity) SetOneShotSound(s platform.Sound) {
	e.soundEvent = true
	e.oneShot = s
}

// SetModel assigns the loaded model resource. If the texture already
// landed, it is bound now; loads complete in either order.
func (e *Entity) SetModel(m platform.Model) {
	e.model = m
	if e.texture != nil {
		e.model.ApplyTexture(e.texture)
	}
}

// SetTexture assigns the loaded texture resource and binds it to the
// model once both are present.
func (e *Entity) SetTexture(t platform.Texture) {
	e.texture = t
	if e.model != nil {
		e.model.ApplyTexture(e.texture)
	}
}

// ContainsPlayer reports whether the last collision pass found the player
// inside this sound area.
func (e *Entity) ContainsPlayer() bool { return e.containsPlayer }

// ProximityVolume returns the current sound-area volume in [0, 1].
func (e *Entity) ProximityVolume() float32 { return e.proxVolume }

// --- Collision dispatch ---

// Collides tests the candidate point against the collider anchored at the
// entity's current position and reports whether the player may move there.
// Sound-area semantics win over action semantics; a bare collider blocks.
func (e *Entity) Collides(candidate mgl32.Vec3) (hit, allowMove bool) {
	hit = e.Collider.Intersects(e.position, candidate)

	switch {
	case e.soundArea:
		// Proximity volumes never block; remember containment for this
		// frame's fade pass.
		e.containsPlayer = hit
		return hit, true

	case e.Action != ActionNone:
		if hit {
			e.triggerAction()
		}
		return hit, true

	default:
		return hit, !hit
	}
}

func (e *Entity) triggerAction() {
	switch e.Action {
	case ActionPlayAnimation, ActionEndGameAfterwards:
		if e.Driver != nil && !e.Driver.Playing() && e.Driver.Position() == 0 {
			e.Driver.Play()
		}
		e.Visible = true

	case ActionPlaySoundOnce:
		if e.oneShotFired {
			return
		}
		if e.oneShot == nil {
			// Resource not loaded yet; keep the trigger armed.
			return
		}
		e.oneShot.Play()
		e.oneShotFired = true
	}
}

// --- Per-frame update ---

// Update advances the animation driver, applies any sampled pose, rebuilds
// the transform if stale, and ramps the proximity volume.
func (e *Entity) Update(dt float32) {
	if e.Driver != nil {
		e.Driver.Advance(dt)

		if e.Action == ActionEndGameAfterwards &&
			e.Driver.Kind() == DriverTransform &&
			e.Driver.Position() > 0 && !e.Driver.Playing() &&
			e.OnEndTrigger != nil {
			e.OnEndTrigger()
		}

		if pose, ok := e.Driver.Sample(); ok {
			e.position = pose.Position
			e.scale = pose.Scale
			e.rotation = pose.Rotation
			e.dirty = true
		}
	}

	if e.dirty {
		e.rebuildTransform()
	}

	if e.soundArea {
		e.updateProximityVolume(dt)
	}
}

func (e *Entity) updateProximityVolume(dt float32) {
	if e.containsPlayer {
		e.proxVolume += proximityFadeRate * dt
		if e.proxVolume > 1 {
			e.proxVolume = 1
		}
	} else {
		e.proxVolume -= proximityFadeRate * dt
		if e.proxVolume < 0 {
			e.proxVolume = 0
		}
	}

	if e.proxSound != nil {
		e.proxSound.SetVolume(e.proxVolume)
		if !e.proxSound.Playing() {
			e.proxSound.Play()
		}
	}
}

// --- Draw and teardown ---

// Draw issues the entity's draw call. It no-ops while invisible or while
// the model resource has not finished loading.
func (e *Entity) Draw(r platform.Renderer) {
	if !e.Visible || e.model == nil {
		return
	}
	r.DrawModel(e.model, e.Transform(), [4]float32{1, 1, 1, 1})
}

// Dispose releases owned audio and visual resources. Safe to call more
// than once; later calls are no-ops.
func (e *Entity) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true

	if e.proxSound != nil {
		e.proxSound.Stop()
		e.proxSound.Dispose()
	}
	if e.oneShot != nil {
		e.oneShot.Dispose()
	}
	if e.texture != nil {
		e.texture.Dispose()
	}
	if e.model != nil {
		e.model.Dispose()
	}
}
