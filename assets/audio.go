package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/grimhold/rockbuster/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of sound effects. Sounds are
// optional: a missing file is remembered so the play path stays silent
// without repeated disk probes.
type AudioLoader struct {
	dir      string
	context  *audio.Context
	sfxCache map[string][]byte
	missing  map[string]bool
}

func NewAudioLoader(ctx *audio.Context, dir string) *AudioLoader {
	return &AudioLoader{
		dir:      dir,
		context:  ctx,
		sfxCache: make(map[string][]byte),
		missing:  make(map[string]bool),
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a
// player. Call at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(name string) error {
	if _, ok := l.sfxCache[name]; ok {
		return nil
	}

	data, err := os.ReadFile(filepath.Join(l.dir, name+".wav"))
	if err != nil {
		l.missing[name] = true
		return fmt.Errorf("read sfx %s: %w", name, err)
	}

	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		l.missing[name] = true
		return fmt.Errorf("decode sfx %s: %w", name, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		l.missing[name] = true
		return fmt.Errorf("read decoded sfx %s: %w", name, err)
	}

	l.sfxCache[name] = decoded
	return nil
}

// PlaySFX plays a named sound effect at the given volume. Unknown
// sounds are skipped silently after the first miss is logged.
func (l *AudioLoader) PlaySFX(name string, volume float64) {
	data, ok := l.sfxCache[name]
	if !ok {
		if l.missing[name] {
			return
		}
		if err := l.PreloadSFX(name); err != nil {
			config.Logger().Debug("sfx unavailable", "name", name, "err", err)
			return
		}
		data = l.sfxCache[name]
	}

	player := l.context.NewPlayerFromBytes(data)
	player.SetVolume(volume)
	player.Play()
}
