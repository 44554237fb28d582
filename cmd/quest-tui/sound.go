package main

import (
	"time"

	"github.com/nancyzera/jurassic-game/internal/domain"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq float64
	dur  time.Duration
}

var eventTones = map[domain.EventType]tone{
	domain.EventItemCollected: {880, 80 * time.Millisecond},
	domain.EventDamage:        {160, 150 * time.Millisecond},
	domain.EventInventoryFull: {330, 60 * time.Millisecond},
	domain.EventLevelWon:      {1320, 300 * time.Millisecond},
	domain.EventGameOver:      {110, 400 * time.Millisecond},
}

// Sound plays a short beep per simulation event. A nil *Sound is silent.
type Sound struct{}

func NewSound() *Sound {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// No audio device: play without sound.
		return nil
	}
	return &Sound{}
}

func (s *Sound) Play(events []domain.Event) {
	if s == nil {
		return
	}
	for _, ev := range events {
		t, ok := eventTones[ev.Type]
		if !ok {
			continue
		}
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			continue
		}
		speaker.Play(beep.Take(sampleRate.N(t.dur), sine))
	}
}

func (s *Sound) Close() {
	if s != nil {
		speaker.Close()
	}
}
