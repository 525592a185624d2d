// internal/termview/tone.go
package termview

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"go-polygon-defense/internal/config"
	"go-polygon-defense/internal/event"
)

const sampleRate = beep.SampleRate(config.AudioSampleRate)

var _ event.Listener = (*KillTone)(nil)

// KillTone beeps once per killed creep. Until Start succeeds it stays silent.
type KillTone struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewKillTone() *KillTone {
	return &KillTone{mixer: &beep.Mixer{}}
}

// Start opens the audio device. Callers may keep going without sound when
// it fails.
func (k *KillTone) Start() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(config.AudioBufferDivMs*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(k.mixer)
	k.initialized = true
	return nil
}

// Close silences queued tones.
func (k *KillTone) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.initialized {
		return
	}
	speaker.Lock()
	k.mixer.Clear()
	speaker.Unlock()
	k.initialized = false
}

func (k *KillTone) OnEvent(e event.Event) {
	if e.Type != event.CreepKilled {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.initialized {
		return
	}
	tone, err := generators.SineTone(sampleRate, config.KillToneHz)
	if err != nil {
		return
	}
	quiet := &effects.Volume{Streamer: tone, Base: 2, Volume: -2}
	speaker.Lock()
	k.mixer.Add(beep.Take(sampleRate.N(config.KillToneMs*time.Millisecond), quiet))
	speaker.Unlock()
}
