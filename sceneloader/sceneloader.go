// Package sceneloader imports a scene description from JSON: an ordered
// collection of entity descriptors with optional mesh, texture, timeline,
// collider, and sound references plus a loosely-typed property bag. The
// free-form collision-action keyword is resolved into a tagged variant
// exactly once here, so the rest of the game never parses strings.
package sceneloader

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"chosenoffset.com/wander/collider"
	"chosenoffset.com/wander/entity"
)

// Spawn defines the player start position and facing.
type Spawn struct {
	Position [3]float32 `json:"position"`
	Yaw      float32    `json:"yaw"` // degrees
}

// ColliderData describes an entity's collider primitive.
type ColliderData struct {
	Type        string     `json:"type"` // "empty", "sphere", "box"
	Offset      [3]float32 `json:"offset,omitempty"`
	Radius      float32    `json:"radius,omitempty"`
	HalfExtents [3]float32 `json:"half_extents,omitempty"`
	RotationDeg [3]float32 `json:"rotation_deg,omitempty"`
}

// EntityData is one entity descriptor from the scene file.
type EntityData struct {
	Name        string         `json:"name,omitempty"`
	Mesh        string         `json:"mesh,omitempty"`
	Texture     string         `json:"texture,omitempty"`
	Timeline    string         `json:"timeline,omitempty"`
	Position    [3]float32     `json:"position"`
	Scale       *[3]float32    `json:"scale,omitempty"`    // default (1,1,1)
	RotationDeg [3]float32     `json:"rotation_deg,omitempty"`
	Visible     *bool          `json:"visible,omitempty"` // default true
	Collider    *ColliderData  `json:"collider,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
}

// SceneData is the loaded scene configuration.
type SceneData struct {
	Name          string       `json:"name"`
	Music         string       `json:"music,omitempty"`
	FootstepSound string       `json:"footstep_sound,omitempty"`
	OutroSound    string       `json:"outro_sound,omitempty"`
	PlayerSpawn   Spawn        `json:"player_spawn"`
	Entities      []EntityData `json:"entities"`
}

// LoadScene loads and validates a scene from a JSON file. Descriptors
// without a name are given a generated one so every entity has a stable
// identity.
func LoadScene(scenePath string) (*SceneData, error) {
	data, err := os.ReadFile(scenePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", scenePath, err)
	}

	var scene SceneData
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", scenePath, err)
	}

	if err := validateScene(&scene); err != nil {
		return nil, fmt.Errorf("invalid scene data in %s: %w", scenePath, err)
	}

	for i := range scene.Entities {
		if scene.Entities[i].Name == "" {
			scene.Entities[i].Name = "entity-" + uuid.NewString()
		}
	}

	return &scene, nil
}

func validateScene(scene *SceneData) error {
	if scene.Name == "" {
		return fmt.Errorf("scene name is required")
	}

	for i := range scene.Entities {
		if err := validateCollider(scene.Entities[i].Collider); err != nil {
			return fmt.Errorf("entity %d: %w", i, err)
		}
	}

	return nil
}

func validateCollider(cd *ColliderData) error {
	if cd == nil {
		return nil
	}

	switch strings.ToLower(cd.Type) {
	case "", string(collider.ShapeEmpty):
		return nil
	case string(collider.ShapeSphere):
		if cd.Radius <= 0 {
			return fmt.Errorf("sphere collider radius must be positive, got %v", cd.Radius)
		}
	case string(collider.ShapeBox):
		for _, h := range cd.HalfExtents {
			if h <= 0 {
				return fmt.Errorf("box collider half extents must be positive, got %v", cd.HalfExtents)
			}
		}
	default:
		return fmt.Errorf("unknown collider type %q", cd.Type)
	}

	return nil
}

// BuildCollider constructs the collider primitive for a descriptor. A nil
// or empty descriptor yields the Empty variant.
func BuildCollider(cd *ColliderData) collider.Collider {
	if cd == nil {
		return collider.Empty{}
	}

	switch strings.ToLower(cd.Type) {
	case string(collider.ShapeSphere):
		return collider.NewSphere(vec3(cd.Offset), cd.Radius)
	case string(collider.ShapeBox):
		return collider.NewBox(vec3(cd.HalfExtents), eulerDegToQuat(cd.RotationDeg))
	default:
		return collider.Empty{}
	}
}

// ResolveAction maps the free-form collision-action keyword to its tagged
// variant. Matching is by case-insensitive substring; an unrecognized
// keyword resolves to ActionNone rather than an error. A descriptor that
// requests the game-ending trigger subsumes the animation keyword.
func ResolveAction(keyword string) entity.Action {
	k := strings.ToLower(keyword)
	switch {
	case strings.Contains(k, "closegameafterwards"):
		return entity.ActionEndGameAfterwards
	case strings.Contains(k, "playanimation"):
		return entity.ActionPlayAnimation
	case strings.Contains(k, "playsoundonce"):
		return entity.ActionPlaySoundOnce
	default:
		return entity.ActionNone
	}
}

// --- Property bag accessors ---

// GetPropertyString returns a string property or the default if absent or
// of the wrong type.
func (e *EntityData) GetPropertyString(key, def string) string {
	if v, ok := e.Properties[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// GetPropertyBool returns a bool property or the default.
func (e *EntityData) GetPropertyBool(key string, def bool) bool {
	if v, ok := e.Properties[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// GetPropertyFloat returns a numeric property or the default. JSON numbers
// arrive as float64.
func (e *EntityData) GetPropertyFloat(key string, def float64) float64 {
	if v, ok := e.Properties[key]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return def
}

func vec3(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func eulerDegToQuat(deg [3]float32) mgl32.Quat {
	return mgl32.AnglesToQuat(
		mgl32.DegToRad(deg[0]),
		mgl32.DegToRad(deg[1]),
		mgl32.DegToRad(deg[2]),
		mgl32.XYZ,
	)
}
