// Package audio drives the beep speaker that sounds while the
// CHIP-8 sound timer is non-zero. This is host-shell code: the VM
// core only ever exposes a boolean SoundPlaying flag and never
// touches an audio device itself.
package audio

import (
	"os"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Settings are the mutable beep parameters. Every access to Settings
// goes through Speaker's mutex. Volume only gates playback: zero keeps
// the clip paused (muted); a non-zero value plays the clip at its own
// level, unscaled.
type Settings struct {
	Volume int
}

// DefaultSettings returns a reasonable default beep volume.
func DefaultSettings() Settings {
	return Settings{Volume: 50}
}

// Speaker plays a looping beep clip while active and pauses it
// otherwise. Its settings are guarded by mu; the clip's paused flag,
// which the speaker package's background mixing goroutine reads, is
// only changed under speaker.Lock — the one shared-mutable point in the
// whole system, and it lives outside the chip8 core.
type Speaker struct {
	mu       sync.Mutex
	settings Settings

	streamer beep.StreamSeeker
	ctrl     *beep.Ctrl
}

// NewSpeaker loads the beep clip at assetPath and initializes the
// speaker device. If the asset cannot be loaded, NewSpeaker returns a
// Speaker whose Play/Pause are no-ops rather than failing the run —
// a ROM without working audio hardware should still boot.
func NewSpeaker(assetPath string, settings Settings) *Speaker {
	s := &Speaker{settings: settings}

	f, err := os.Open(assetPath)
	if err != nil {
		return s
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return s
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(format.SampleRate.D(10))); err != nil {
		return s
	}

	loop, err := beep.Loop(-1, streamer)
	if err != nil {
		return s
	}

	ctrl := &beep.Ctrl{Streamer: loop, Paused: true}
	s.streamer = streamer
	s.ctrl = ctrl
	speaker.Play(ctrl)

	return s
}

// SetVolume updates the beep volume under the speaker's lock.
func (s *Speaker) SetVolume(volume int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Volume = volume
}

// Volume returns the current beep volume under the speaker's lock.
func (s *Speaker) Volume() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Volume
}

// Play unpauses the beep clip if the speaker has audio loaded and is
// not muted.
func (s *Speaker) Play() {
	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = s.Volume() == 0
	speaker.Unlock()
}

// Pause silences the beep clip.
func (s *Speaker) Pause() {
	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
}

// ToggleMute flips between silent and restoreVolume: a non-zero volume
// becomes 0, and a zero volume becomes restoreVolume.
func (s *Speaker) ToggleMute(restoreVolume int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings.Volume > 0 {
		s.settings.Volume = 0
	} else {
		s.settings.Volume = restoreVolume
	}
}
