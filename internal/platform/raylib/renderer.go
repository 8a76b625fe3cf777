package raylib

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/wander/internal/platform"
)

// Renderer implements platform.Renderer. When a lighting shader is
// configured it receives the player spotlight uniforms each frame;
// otherwise models draw with raylib's default material.
type Renderer struct {
	shaderVS string
	shaderFS string

	shader    rl.Shader
	hasShader bool

	locPosition  int32
	locDirection int32
	locInner     int32
	locOuter     int32
	locIntensity int32
	locColor     int32
	locViewPos   int32

	viewPos mgl32.Vec3
}

// NewRenderer creates a renderer. Shader paths may be empty for unlit
// rendering.
func NewRenderer(shaderVS, shaderFS string) *Renderer {
	return &Renderer{shaderVS: shaderVS, shaderFS: shaderFS}
}

// init compiles the lighting shader once the GL context exists. Called by
// the engine after the window opens. Fails soft to unlit rendering.
func (r *Renderer) init() {
	if r.shaderVS == "" && r.shaderFS == "" {
		return
	}

	r.shader = rl.LoadShader(r.shaderVS, r.shaderFS)
	if r.shader.ID == 0 {
		log.Printf("lighting shader failed to compile, rendering unlit")
		return
	}
	r.hasShader = true

	r.locPosition = rl.GetShaderLocation(r.shader, "spotPosition")
	r.locDirection = rl.GetShaderLocation(r.shader, "spotDirection")
	r.locInner = rl.GetShaderLocation(r.shader, "spotInnerCos")
	r.locOuter = rl.GetShaderLocation(r.shader, "spotOuterCos")
	r.locIntensity = rl.GetShaderLocation(r.shader, "spotIntensity")
	r.locColor = rl.GetShaderLocation(r.shader, "spotColor")
	r.locViewPos = rl.GetShaderLocation(r.shader, "viewPos")
}

// SetSpotlight uploads the player spotlight uniforms for this frame.
func (r *Renderer) SetSpotlight(light platform.Spotlight) {
	if !r.hasShader {
		return
	}

	pos := []float32{light.Position.X(), light.Position.Y(), light.Position.Z()}
	dir := []float32{light.Direction.X(), light.Direction.Y(), light.Direction.Z()}
	col := []float32{light.Color[0], light.Color[1], light.Color[2]}

	rl.SetShaderValue(r.shader, r.locPosition, pos, rl.ShaderUniformVec3)
	rl.SetShaderValue(r.shader, r.locDirection, dir, rl.ShaderUniformVec3)
	rl.SetShaderValue(r.shader, r.locInner, []float32{cosDeg(light.InnerCone)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.shader, r.locOuter, []float32{cosDeg(light.OuterCone)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.shader, r.locIntensity, []float32{light.Intensity}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.shader, r.locColor, col, rl.ShaderUniformVec3)
}

// Begin3D starts the perspective pass.
func (r *Renderer) Begin3D(cam platform.Camera) {
	r.viewPos = cam.Eye
	if r.hasShader {
		eye := []float32{cam.Eye.X(), cam.Eye.Y(), cam.Eye.Z()}
		rl.SetShaderValue(r.shader, r.locViewPos, eye, rl.ShaderUniformVec3)
	}

	rl.BeginMode3D(rl.Camera3D{
		Position:   rlVec3(cam.Eye),
		Target:     rlVec3(cam.Target),
		Up:         rlVec3(cam.Up),
		Fovy:       cam.FovY,
		Projection: rl.CameraPerspective,
	})
}

// DrawModel draws a model with a resolved world transform and RGBA tint.
func (r *Renderer) DrawModel(m platform.Model, transform mgl32.Mat4, tint [4]float32) {
	mdl, ok := m.(*Model)
	if !ok {
		return
	}
	mdl.model.Transform = rlMatrix(transform)
	rl.DrawModel(mdl.model, rl.NewVector3(0, 0, 0), 1, rlColor(tint))
}

// End3D ends the perspective pass.
func (r *Renderer) End3D() {
	rl.EndMode3D()
}

// DrawFade covers the screen with black at the given opacity.
func (r *Renderer) DrawFade(opacity float32) {
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()),
		rl.Fade(rl.Black, opacity))
}

// attachShader puts the lighting shader on every material of a freshly
// loaded model.
func (r *Renderer) attachShader(model *rl.Model) {
	if !r.hasShader {
		return
	}
	materials := unsafeMaterials(model)
	for i := range materials {
		materials[i].Shader = r.shader
	}
}
