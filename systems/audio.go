package systems

import (
	"github.com/grimhold/rockbuster/assets"
	"github.com/grimhold/rockbuster/components"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

const sampleRate = 44100

var (
	globalAudioContext *audio.Context
	audioLoader        *assets.AudioLoader
	startMuted         bool
)

// SetStartMuted makes newly created audio singletons start muted.
func SetStartMuted(muted bool) {
	startMuted = muted
}

func initGlobalAudio() {
	if globalAudioContext != nil {
		return
	}
	globalAudioContext = audio.NewContext(sampleRate)
	audioLoader = assets.NewAudioLoader(globalAudioContext, "assets/audio")
}

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFXVolume:  0.8,
			Muted:      startMuted,
			PendingSFX: make([]string, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// QueueSFX enqueues a sound to be played on the next audio update.
// Implements events.SoundPlayer through SoundQueue.
func QueueSFX(e *ecs.ECS, name string) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, name)
}

// SoundQueue adapts the audio singleton to the event observers.
type SoundQueue struct {
	ECS *ecs.ECS
}

func (q *SoundQueue) PlaySound(name string) {
	QueueSFX(q.ECS, name)
}

// UpdateAudio drains the pending effect queue.
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	if len(audioData.PendingSFX) == 0 {
		return
	}
	for _, name := range audioData.PendingSFX {
		if !audioData.Muted {
			audioLoader.PlaySFX(name, audioData.SFXVolume)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}
