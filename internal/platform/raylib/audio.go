package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Audio keeps the set of active music streams fed. raylib music streams
// need UpdateMusicStream every frame; one-shot sounds do not. Everything
// here runs on the frame-loop goroutine.
type Audio struct {
	streams map[*streamSound]struct{}
}

// NewAudio creates an empty audio registry.
func NewAudio() *Audio {
	return &Audio{streams: make(map[*streamSound]struct{})}
}

// update feeds all playing streams. Called once per frame by the engine.
func (a *Audio) update() {
	for s := range a.streams {
		if rl.IsMusicStreamPlaying(s.music) {
			rl.UpdateMusicStream(s.music)
		}
	}
}

// streamSound is a looping sound backed by a raylib music stream. Used for
// ambient music, sound areas, and the footstep loop.
type streamSound struct {
	music    rl.Music
	audio    *Audio
	disposed bool
}

func (s *streamSound) Play() {
	rl.PlayMusicStream(s.music)
}

func (s *streamSound) Stop() {
	rl.StopMusicStream(s.music)
}

func (s *streamSound) SetVolume(volume float32) {
	rl.SetMusicVolume(s.music, volume)
}

func (s *streamSound) Playing() bool {
	return rl.IsMusicStreamPlaying(s.music)
}

func (s *streamSound) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	delete(s.audio.streams, s)
	rl.UnloadMusicStream(s.music)
}

// oneShotSound is a fully decoded raylib sound. Used for collision cues
// and the outro.
type oneShotSound struct {
	sound    rl.Sound
	disposed bool
}

func (s *oneShotSound) Play() {
	rl.PlaySound(s.sound)
}

func (s *oneShotSound) Stop() {
	rl.StopSound(s.sound)
}

func (s *oneShotSound) SetVolume(volume float32) {
	rl.SetSoundVolume(s.sound, volume)
}

func (s *oneShotSound) Playing() bool {
	return rl.IsSoundPlaying(s.sound)
}

func (s *oneShotSound) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	rl.UnloadSound(s.sound)
}
