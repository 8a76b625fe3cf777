package raylib

import (
	"math"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

func rlVec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

// rlMatrix converts a column-major mgl32 matrix to raylib's layout. The
// field Mi of rl.Matrix holds the element at column-major index i, so the
// copy is one-to-one.
func rlMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func rlColor(tint [4]float32) rl.Color {
	return rl.NewColor(
		uint8(clamp01(tint[0])*255),
		uint8(clamp01(tint[1])*255),
		uint8(clamp01(tint[2])*255),
		uint8(clamp01(tint[3])*255),
	)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(deg) * math.Pi / 180))
}

func unsafeMaterials(model *rl.Model) []rl.Material {
	if model.Materials == nil || model.MaterialCount == 0 {
		return nil
	}
	return unsafe.Slice(model.Materials, int(model.MaterialCount))
}
