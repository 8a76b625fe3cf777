package player

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/wander/collider"
	"chosenoffset.com/wander/entity"
	"chosenoffset.com/wander/stage"
)

const dt = float32(1.0 / 60.0)

type fakeSound struct {
	plays   int
	stops   int
	playing bool
}

func (f *fakeSound) Play()              { f.plays++; f.playing = true }
func (f *fakeSound) Stop()              { f.stops++; f.playing = false }
func (f *fakeSound) SetVolume(float32)  {}
func (f *fakeSound) Playing() bool      { return f.playing }
func (f *fakeSound) Dispose()           {}

func gameStage() *stage.Controller {
	st := stage.NewController()
	st.SignalGame()
	return st
}

func TestClampInput(t *testing.T) {
	tests := []struct {
		name            string
		strafe, forward float32
		wantUnit        bool
	}{
		{"diagonal over 1", 1, 1, true},
		{"long vector", 3, -4, true},
		{"unit forward", 0, 1, false},
		{"short vector", 0.3, 0.4, false},
		{"zero", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f := ClampInput(tt.strafe, tt.forward)
			mag := math.Hypot(float64(s), float64(f))
			if tt.wantUnit {
				if math.Abs(mag-1) > 1e-6 {
					t.Errorf("clamped magnitude = %v, want 1", mag)
				}
			} else {
				if s != tt.strafe || f != tt.forward {
					t.Errorf("short vector changed: (%v, %v) -> (%v, %v)", tt.strafe, tt.forward, s, f)
				}
			}
		})
	}
}

func TestFirstInputWakesStage(t *testing.T) {
	c := NewController(mgl32.Vec3{}, 0)
	st := stage.NewController()

	c.Step(Input{}, dt, nil, st)
	if st.State() != stage.StateIntro {
		t.Fatal("stage left intro without input")
	}

	c.Step(Input{Forward: 1}, dt, nil, st)
	if st.State() != stage.StateGame {
		t.Fatal("one frame of forward input did not transition intro -> game")
	}
	if c.Acceleration() != (mgl32.Vec3{}) {
		t.Errorf("acceleration not zeroed before game stage: %v", c.Acceleration())
	}
	if c.Position() != (mgl32.Vec3{}) {
		t.Errorf("player moved during intro: %v", c.Position())
	}
}

func TestForwardMovementFollowsYaw(t *testing.T) {
	c := NewController(mgl32.Vec3{}, 0)
	st := gameStage()

	for i := 0; i < 30; i++ {
		c.Step(Input{Forward: 1}, dt, nil, st)
	}
	pos := c.Position()
	if pos.Z() >= 0 {
		t.Errorf("yaw 0 forward should move along -Z, got %v", pos)
	}
	if abs := float32(math.Abs(float64(pos.X()))); abs > 1e-4 {
		t.Errorf("forward movement drifted on X: %v", pos)
	}

	// Yaw 90 degrees left: forward now points along -X.
	c2 := NewController(mgl32.Vec3{}, float32(math.Pi/2))
	for i := 0; i < 30; i++ {
		c2.Step(Input{Forward: 1}, dt, nil, st)
	}
	if c2.Position().X() >= 0 {
		t.Errorf("rotated forward should move along -X, got %v", c2.Position())
	}
}

func TestBlockedMovementRecoils(t *testing.T) {
	c := NewController(mgl32.Vec3{}, 0)
	st := gameStage()

	wall := entity.New("wall", "wall")
	wall.Collider = collider.NewSphere(mgl32.Vec3{}, 5)
	world := []*entity.Entity{wall}

	c.Step(Input{Forward: 1}, dt, world, st)

	if c.Position() != (mgl32.Vec3{}) {
		t.Errorf("blocked player moved to %v", c.Position())
	}
	// Forward input builds -Z acceleration; the elastic bounce inverts it.
	if c.Acceleration().Z() <= 0 {
		t.Errorf("acceleration not inverted on block: %v", c.Acceleration())
	}
}

func TestSoundAreaDoesNotBlock(t *testing.T) {
	c := NewController(mgl32.Vec3{}, 0)
	st := gameStage()

	area := entity.New("area", "hum")
	area.Collider = collider.NewSphere(mgl32.Vec3{}, 50)
	area.MarkSoundArea()
	world := []*entity.Entity{area}

	for i := 0; i < 10; i++ {
		c.Step(Input{Forward: 1}, dt, world, st)
	}
	if c.Position() == (mgl32.Vec3{}) {
		t.Error("player blocked by a proximity sound volume")
	}
	if !area.ContainsPlayer() {
		t.Error("sound area containment not refreshed during movement pass")
	}
}

func TestFootstepGating(t *testing.T) {
	c := NewController(mgl32.Vec3{}, 0)
	st := gameStage()
	steps := &fakeSound{}
	c.SetFootsteps(steps)

	for i := 0; i < 20; i++ {
		c.Step(Input{Forward: 1}, dt, nil, st)
	}
	if !steps.playing {
		t.Fatal("footsteps not playing while moving")
	}
	if steps.plays != 1 {
		t.Errorf("footstep loop restarted while moving: %d plays", steps.plays)
	}

	// Release input: the damped integrator coasts, then stops.
	for i := 0; i < 120; i++ {
		c.Step(Input{}, dt, nil, st)
	}
	if steps.playing {
		t.Error("footsteps still playing after coming to rest")
	}
}

func TestEndStageSuppressesMovement(t *testing.T) {
	c := NewController(mgl32.Vec3{}, 0)
	st := gameStage()
	steps := &fakeSound{playing: true}
	c.SetFootsteps(steps)
	st.SignalEnd()

	for i := 0; i < 10; i++ {
		c.Step(Input{Forward: 1}, dt, nil, st)
	}
	if c.Position() != (mgl32.Vec3{}) {
		t.Errorf("player moved after End stage: %v", c.Position())
	}
	if steps.playing {
		t.Error("footsteps not stopped after End stage")
	}
}

func TestPitchIsNotClamped(t *testing.T) {
	// The source behavior never clamps pitch; the camera can rotate past
	// vertical. Preserved, not corrected.
	c := NewController(mgl32.Vec3{}, 0)
	st := gameStage()

	for i := 0; i < 2000; i++ {
		c.Step(Input{LookY: -10}, dt, nil, st)
	}
	if c.Pitch() <= float32(math.Pi/2) {
		t.Errorf("pitch %v did not pass vertical; clamping was introduced", c.Pitch())
	}
}

func TestCameraFollowsPosition(t *testing.T) {
	c := NewController(mgl32.Vec3{3, 0, -2}, 0)
	cam := c.Camera()
	if cam.Eye.X() != 3 || cam.Eye.Z() != -2 {
		t.Errorf("camera eye %v not anchored to player position", cam.Eye)
	}
	if cam.Eye.Y() <= 0 {
		t.Errorf("camera eye %v not raised to head height", cam.Eye)
	}

	dir := c.LookDirection()
	if d := dir.Len(); math.Abs(float64(d)-1) > 1e-5 {
		t.Errorf("look direction not normalized: %v (len %v)", dir, d)
	}
}
