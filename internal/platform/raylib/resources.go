package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"chosenoffset.com/wander/internal/platform"
)

// Model wraps a loaded raylib model.
type Model struct {
	model    rl.Model
	disposed bool
}

// ApplyTexture binds the texture as the albedo map on every material.
func (m *Model) ApplyTexture(t platform.Texture) {
	tex, ok := t.(*Texture)
	if !ok {
		return
	}
	materials := unsafeMaterials(&m.model)
	for i := range materials {
		rl.SetMaterialTexture(&materials[i], rl.MapDiffuse, tex.texture)
	}
}

// Dispose releases the model's GPU resources.
func (m *Model) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	rl.UnloadModel(m.model)
}

// Texture wraps a loaded raylib texture.
type Texture struct {
	texture  rl.Texture2D
	disposed bool
}

// Dispose releases the texture's GPU resources.
func (t *Texture) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	rl.UnloadTexture(t.texture)
}
