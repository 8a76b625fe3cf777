package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/wander/entity"
	"chosenoffset.com/wander/internal/platform"
	"chosenoffset.com/wander/sceneloader"
	"chosenoffset.com/wander/stage"
)

const dt = float32(1.0 / 60.0)

// --- Fakes ---

type fakeInput struct {
	axes map[platform.Control]float32
}

func (f *fakeInput) Axis(c platform.Control) float32 {
	return f.axes[c]
}
func (f *fakeInput) JustPressed(platform.Control) bool { return false }

type fakeSound struct {
	plays   int
	playing bool
	volume  float32
}

func (f *fakeSound) Play()               { f.plays++; f.playing = true }
func (f *fakeSound) Stop()               { f.playing = false }
func (f *fakeSound) SetVolume(v float32) { f.volume = v }
func (f *fakeSound) Playing() bool       { return f.playing }
func (f *fakeSound) Dispose()            {}

type fakeModel struct{ disposed bool }

func (f *fakeModel) ApplyTexture(platform.Texture) {}
func (f *fakeModel) Dispose()                      { f.disposed = true }

// fakeLoader queues completion thunks and runs them on Drain, like the real
// backend.
type fakeLoader struct {
	pending  []func()
	shutdown bool
}

func (f *fakeLoader) LoadModel(path string, assign func(platform.Model))            {}
func (f *fakeLoader) LoadTexture(path string, assign func(platform.Texture))        {}
func (f *fakeLoader) LoadSound(path string, loop bool, assign func(platform.Sound)) {}
func (f *fakeLoader) Drain() {
	for _, thunk := range f.pending {
		thunk()
	}
	f.pending = nil
}
func (f *fakeLoader) Shutdown() { f.shutdown = true }

type fakeRenderer struct {
	calls []string
	fades []float32
}

func (f *fakeRenderer) SetSpotlight(platform.Spotlight) { f.calls = append(f.calls, "spotlight") }
func (f *fakeRenderer) Begin3D(platform.Camera)         { f.calls = append(f.calls, "begin") }
func (f *fakeRenderer) DrawModel(platform.Model, mgl32.Mat4, [4]float32) {
	f.calls = append(f.calls, "model")
}
func (f *fakeRenderer) End3D() { f.calls = append(f.calls, "end") }
func (f *fakeRenderer) DrawFade(opacity float32) {
	f.calls = append(f.calls, "fade")
	f.fades = append(f.fades, opacity)
}

type scriptDriver struct {
	playing  bool
	position float32
	duration float32
}

func (s *scriptDriver) Advance(dt float32) {
	if !s.playing {
		return
	}
	s.position += dt
	if s.position >= s.duration {
		s.position = s.duration
		s.playing = false
	}
}
func (s *scriptDriver) Play()                       { s.playing = true }
func (s *scriptDriver) Stop()                       { s.playing = false }
func (s *scriptDriver) Playing() bool               { return s.playing }
func (s *scriptDriver) Position() float32           { return s.position }
func (s *scriptDriver) Sample() (entity.Pose, bool) { return entity.Pose{}, false }
func (s *scriptDriver) Kind() entity.DriverKind     { return entity.DriverTransform }

// --- Tests ---

func testScene() *sceneloader.SceneData {
	return &sceneloader.SceneData{
		Name: "test",
		Entities: []sceneloader.EntityData{
			{
				Name:     "finale",
				Timeline: "anims/finale.anm",
				Position: [3]float32{0, 0, -1},
				Collider: &sceneloader.ColliderData{Type: "sphere", Radius: 3},
				Properties: map[string]any{
					"collisionAction": "playanimation closegameafterwards",
				},
			},
		},
	}
}

func newTestGame(scene *sceneloader.SceneData, input *fakeInput) (*Game, *fakeLoader) {
	loader := &fakeLoader{}
	drivers := func(string) entity.Driver { return &scriptDriver{duration: 0.05} }
	return New(scene, loader, input, drivers), loader
}

func TestFirstInputTransitionsIntroToGame(t *testing.T) {
	input := &fakeInput{axes: map[platform.Control]float32{}}
	g, _ := newTestGame(testScene(), input)

	if err := g.Update(dt); err != nil {
		t.Fatal(err)
	}
	if g.Stage.State() != stage.StateIntro {
		t.Fatal("stage left intro without player input")
	}

	input.axes[platform.ControlForward] = 1
	if err := g.Update(dt); err != nil {
		t.Fatal(err)
	}
	if g.Stage.State() != stage.StateGame {
		t.Fatalf("stage = %v after forward input, want game", g.Stage.State())
	}
}

func TestFinishedEndEntityEndsTheGameOnce(t *testing.T) {
	input := &fakeInput{axes: map[platform.Control]float32{platform.ControlForward: 1}}
	g, _ := newTestGame(testScene(), input)
	outro := &fakeSound{}
	g.Stage.SetOutro(outro)

	// The player spawns inside the finale trigger; walking starts the
	// timeline, and once it finishes the stage must end.
	for i := 0; i < 60; i++ {
		if err := g.Update(dt); err != nil {
			t.Fatal(err)
		}
	}

	if g.Stage.State() != stage.StateEnd {
		t.Fatalf("stage = %v, want end", g.Stage.State())
	}
	if outro.plays != 1 {
		t.Errorf("outro played %d times, want exactly 1", outro.plays)
	}

	// The condition keeps holding; nothing may re-fire.
	for i := 0; i < 30; i++ {
		g.Update(dt)
	}
	if outro.plays != 1 {
		t.Errorf("outro re-fired on later frames: %d plays", outro.plays)
	}
}

func TestLoaderDrainedBeforeEntitiesAreUsed(t *testing.T) {
	input := &fakeInput{axes: map[platform.Control]float32{}}
	g, loader := newTestGame(testScene(), input)

	model := &fakeModel{}
	target := g.Entities[0]
	loader.pending = append(loader.pending, func() { target.SetModel(model) })

	g.Update(dt)

	r := &fakeRenderer{}
	g.Draw(r)

	found := false
	for _, c := range r.calls {
		if c == "model" {
			found = true
		}
	}
	if !found {
		t.Error("model assigned by loader drain was not drawn the same frame")
	}
}

func TestDrawSkipsUnloadedModels(t *testing.T) {
	input := &fakeInput{axes: map[platform.Control]float32{}}
	g, _ := newTestGame(testScene(), input)
	g.Update(dt)

	r := &fakeRenderer{}
	g.Draw(r)

	for _, c := range r.calls {
		if c == "model" {
			t.Fatal("draw call issued for a model that never finished loading")
		}
	}
}

func TestDrawOrder(t *testing.T) {
	input := &fakeInput{axes: map[platform.Control]float32{}}
	g, loader := newTestGame(testScene(), input)
	target := g.Entities[0]
	loader.pending = append(loader.pending, func() { target.SetModel(&fakeModel{}) })
	g.Update(dt)

	r := &fakeRenderer{}
	g.Draw(r)

	want := []string{"spotlight", "begin", "model", "end", "fade"}
	if len(r.calls) < len(want) {
		t.Fatalf("draw calls = %v, want prefix %v", r.calls, want)
	}
	for i, w := range want {
		if r.calls[i] != w {
			t.Fatalf("draw call %d = %q, want %q (all: %v)", i, r.calls[i], w, r.calls)
		}
	}
}

func TestEndSplashFadeDrawnAfterEnd(t *testing.T) {
	input := &fakeInput{axes: map[platform.Control]float32{}}
	g, _ := newTestGame(testScene(), input)
	g.Stage.SignalGame()
	g.Stage.SignalEnd()
	for i := 0; i < 30; i++ {
		g.Update(dt)
	}

	r := &fakeRenderer{}
	g.Draw(r)

	if len(r.fades) != 1 {
		t.Fatalf("fade calls after End = %d, want 1 (secondary hidden, splash shown)", len(r.fades))
	}
	if r.fades[0] <= 0 {
		t.Errorf("end splash opacity = %v, want > 0", r.fades[0])
	}
}

func TestDisposeShutsDownLoader(t *testing.T) {
	input := &fakeInput{axes: map[platform.Control]float32{}}
	g, loader := newTestGame(testScene(), input)
	g.Dispose()
	if !loader.shutdown {
		t.Error("loader not shut down on dispose")
	}
}
