package sceneloader

import (
	"chosenoffset.com/wander/entity"
	"chosenoffset.com/wander/internal/platform"
)

// DriverFactory creates an animation driver for a timeline reference. The
// engine backend supplies the real implementation; tests supply fakes. A
// nil return leaves the entity without a driver.
type DriverFactory func(timeline string) entity.Driver

// BuildEntities constructs runtime entities from scene descriptors and
// starts the asynchronous resource loads for their meshes, textures, and
// sounds. Assignment happens later, when the frame loop drains the loader;
// until then the affected draw/audio paths no-op.
func BuildEntities(scene *SceneData, loader platform.ResourceLoader, drivers DriverFactory, onEndTrigger func()) []*entity.Entity {
	entities := make([]*entity.Entity, 0, len(scene.Entities))

	for i := range scene.Entities {
		data := &scene.Entities[i]
		e := entity.New(data.Name, data.Name)

		e.SetPosition(vec3(data.Position))
		if data.Scale != nil {
			e.SetScale(vec3(*data.Scale))
		}
		e.SetRotation(eulerDegToQuat(data.RotationDeg))
		if data.Visible != nil {
			e.Visible = *data.Visible
		}

		e.Collider = BuildCollider(data.Collider)
		e.Action = ResolveAction(data.GetPropertyString("collisionAction", ""))
		if e.Action == entity.ActionEndGameAfterwards {
			e.OnEndTrigger = onEndTrigger
		}

		if data.Timeline != "" && drivers != nil {
			e.Driver = drivers(data.Timeline)
		}

		if data.Mesh != "" {
			loader.LoadModel(data.Mesh, e.SetModel)
		}
		if data.Texture != "" {
			loader.LoadTexture(data.Texture, e.SetTexture)
		}
		if soundArea := data.GetPropertyString("soundArea", ""); soundArea != "" {
			e.MarkSoundArea()
			loader.LoadSound(soundArea, true, e.SetProximitySound)
		}
		if soundEvent := data.GetPropertyString("soundEvent", ""); soundEvent != "" {
			e.MarkSoundEvent()
			loader.LoadSound(soundEvent, false, e.SetOneShotSound)
		}

		entities = append(entities, e)
	}

	return entities
}
