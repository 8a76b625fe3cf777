package raylib

import (
	"fmt"
	"log"
	"os"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"chosenoffset.com/wander/internal/platform"
)

// completionBuffer bounds how many finished loads can queue up between
// frames.
const completionBuffer = 256

// Loader implements platform.ResourceLoader. The asynchronous half of a
// load only touches the filesystem; the raylib load itself runs inside the
// completion thunk, on the frame-loop goroutine, where the GL and audio
// contexts live. A failed load logs and never invokes its assign callback.
type Loader struct {
	renderer    *Renderer
	audio       *Audio
	completions chan func()
	wg          sync.WaitGroup
}

// NewLoader creates a loader that attaches the renderer's lighting shader
// to loaded models and registers looping sounds with the audio registry.
func NewLoader(renderer *Renderer, audio *Audio) *Loader {
	return &Loader{
		renderer:    renderer,
		audio:       audio,
		completions: make(chan func(), completionBuffer),
	}
}

func (l *Loader) preflight(kind, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", kind, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s %s: is a directory", kind, path)
	}
	return nil
}

func (l *Loader) enqueue(kind, path string, thunk func()) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		if err := l.preflight(kind, path); err != nil {
			log.Printf("resource load failed: %v", err)
			return
		}
		l.completions <- thunk
	}()
}

// LoadModel starts an asynchronous model load.
func (l *Loader) LoadModel(path string, assign func(platform.Model)) {
	l.enqueue("model", path, func() {
		model := rl.LoadModel(path)
		if model.MeshCount == 0 {
			log.Printf("resource load failed: model %s: no meshes", path)
			return
		}
		l.renderer.attachShader(&model)
		assign(&Model{model: model})
	})
}

// LoadTexture starts an asynchronous texture load.
func (l *Loader) LoadTexture(path string, assign func(platform.Texture)) {
	l.enqueue("texture", path, func() {
		texture := rl.LoadTexture(path)
		if texture.ID == 0 {
			log.Printf("resource load failed: texture %s: not a usable image", path)
			return
		}
		assign(&Texture{texture: texture})
	})
}

// LoadSound starts an asynchronous sound load. Looping sounds become music
// streams; one-shots are decoded whole.
func (l *Loader) LoadSound(path string, loop bool, assign func(platform.Sound)) {
	l.enqueue("sound", path, func() {
		if loop {
			music := rl.LoadMusicStream(path)
			if music.FrameCount == 0 {
				log.Printf("resource load failed: sound %s: empty stream", path)
				return
			}
			music.Looping = true
			s := &streamSound{music: music, audio: l.audio}
			l.audio.streams[s] = struct{}{}
			assign(s)
			return
		}

		sound := rl.LoadSound(path)
		if sound.FrameCount == 0 {
			log.Printf("resource load failed: sound %s: empty sound", path)
			return
		}
		assign(&oneShotSound{sound: sound})
	})
}

// Drain runs all queued completion thunks on the calling goroutine. Called
// once per frame before the entity list is used.
func (l *Loader) Drain() {
	for {
		select {
		case thunk := <-l.completions:
			thunk()
		default:
			return
		}
	}
}

// Shutdown waits for in-flight loads and discards any completions that
// never ran. Discarded thunks have not touched the GPU or audio device, so
// there is nothing to release.
func (l *Loader) Shutdown() {
	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	for {
		select {
		case <-l.completions:
		case <-done:
			for {
				select {
				case <-l.completions:
				default:
					return
				}
			}
		}
	}
}
