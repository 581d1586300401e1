package engine

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Music is a streamed audio track kept fed by the frame loop.
type Music struct {
	stream  rl.Music
	playing bool
}

// ensureAudio opens the audio device on first use.
func (ctx *Context) ensureAudio() {
	if !ctx.audioOpen {
		rl.InitAudioDevice()
		ctx.audioOpen = true
	}
}

// PlayMusic starts streaming the audio file at path at the given volume
// (0 to 1). The loop updates the stream each frame until the music is
// stopped or the loop exits.
func (ctx *Context) PlayMusic(path string, volume float32) (*Music, error) {
	ctx.ensureAudio()

	stream := rl.LoadMusicStream(path)
	if stream.FrameCount == 0 {
		return nil, fmt.Errorf("loading music %q: decode failed", path)
	}

	rl.SetMusicVolume(stream, volume)
	rl.PlayMusicStream(stream)

	m := &Music{stream: stream, playing: true}
	ctx.music = append(ctx.music, m)
	return m, nil
}

// Pause pauses playback.
func (m *Music) Pause() {
	rl.PauseMusicStream(m.stream)
	m.playing = false
}

// Resume continues paused playback.
func (m *Music) Resume() {
	rl.ResumeMusicStream(m.stream)
	m.playing = true
}

// Stop halts playback; the stream can be restarted with Resume.
func (m *Music) Stop() {
	rl.StopMusicStream(m.stream)
	m.playing = false
}

func (m *Music) unload() {
	rl.UnloadMusicStream(m.stream)
}

// updateMusic feeds every active music stream. Called once per frame by
// the loop.
func (ctx *Context) updateMusic() {
	for _, m := range ctx.music {
		if m.playing {
			rl.UpdateMusicStream(m.stream)
		}
	}
}

// Sound is a short sample loaded fully into memory.
type Sound struct {
	snd rl.Sound
}

// LoadSound loads a sound effect from path.
func (ctx *Context) LoadSound(path string) (*Sound, error) {
	ctx.ensureAudio()

	snd := rl.LoadSound(path)
	if snd.FrameCount == 0 {
		return nil, fmt.Errorf("loading sound %q: decode failed", path)
	}
	return &Sound{snd: snd}, nil
}

// Play starts the sound from the beginning.
func (s *Sound) Play() {
	rl.PlaySound(s.snd)
}

// Unload releases the sample.
func (s *Sound) Unload() {
	rl.UnloadSound(s.snd)
}
