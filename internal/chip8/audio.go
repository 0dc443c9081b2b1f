package chip8

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	toneHz      = 440.0
	bufferLen   = time.Second / 20
	pollForTone = time.Second / 60
)

// ManageAudio plays a square-wave tone that is audible only while
// SoundGate reports true (the gate is read on every Stream call from
// speaker's mixing goroutine), and returns when stop is closed. It replaces the teacher's bundled-mp3
// beep sample with a synthesized tone, since the sound gate models an
// on/off square wave, not a sampled clip.
func (vm *VM) ManageAudio(stop <-chan struct{}) error {
	tone, err := generators.SquareTone(sampleRate, toneHz)
	if err != nil {
		return err
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferLen)); err != nil {
		return err
	}

	gated := &gatedStreamer{streamer: tone, gate: vm.SoundGate}
	speaker.Play(gated)

	ticker := time.NewTicker(pollForTone)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
			// Nothing to do: gatedStreamer reads vm.SoundGate() live on
			// every Stream call from speaker's own mixing goroutine.
		}
	}
}

// gatedStreamer silences an underlying streamer's samples whenever
// gate() reports false, instead of stopping/restarting playback (which
// would audibly click on every Fx18 transition).
type gatedStreamer struct {
	streamer beep.Streamer
	gate     func() bool
}

func (g *gatedStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)
	if !g.gate() {
		for i := range samples[:n] {
			samples[i][0] = 0
			samples[i][1] = 0
		}
	}
	return n, ok
}

func (g *gatedStreamer) Err() error {
	return g.streamer.Err()
}
