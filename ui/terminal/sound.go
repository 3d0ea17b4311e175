package terminal

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	pickupTone    = 880 // Hz
	pickupLength  = 50 * time.Millisecond
	speakerBuffer = time.Second / 10
)

// Sound plays short tones. A nil or disabled Sound is silent.
type Sound struct {
	enabled bool
}

// NewSound opens the speaker when enabled. Audio is optional: a failure is
// logged and the game runs silent.
func NewSound(enabled bool) *Sound {
	s := &Sound{}
	if !enabled {
		return s
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		log.Printf("audio initialization failed: %v", err)
		return s
	}
	s.enabled = true
	return s
}

// Pickup plays the food pickup tone without blocking
func (s *Sound) Pickup() {
	if s == nil || !s.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, pickupTone)
	if err != nil {
		log.Printf("pickup tone: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(pickupLength), sine))
}

func (s *Sound) Close() {
	if s == nil || !s.enabled {
		return
	}
	speaker.Close()
	s.enabled = false
}
