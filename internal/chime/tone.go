// Package chime plays short synthesized tones when a dispense job
// finishes, so the operator can walk away from the machine.
package chime

import (
	"encoding/binary"
	"math"
	"time"
)

// Audio format shared by the generator and the oto context.
const (
	SampleRate     = 24000
	ChannelCount   = 1
	bytesPerSample = 2
)

// Tone is one note of a chime.
type Tone struct {
	Freq     float64 // Hz; 0 is silence
	Duration time.Duration
}

// Volume is the peak amplitude as a fraction of full scale.
const Volume = 0.3

// fade is applied to both ends of every tone to avoid clicks.
const fade = 5 * time.Millisecond

var (
	// Ready is the rising two-note chime played when drinks are done.
	Ready = []Tone{{Freq: 880, Duration: 120 * time.Millisecond}, {Freq: 1318.5, Duration: 220 * time.Millisecond}}
	// Fault is the low tone played when a job aborts.
	Fault = []Tone{{Freq: 220, Duration: 250 * time.Millisecond}, {Duration: 60 * time.Millisecond}, {Freq: 196, Duration: 350 * time.Millisecond}}
)

func samplesFor(d time.Duration) int {
	return int(d.Seconds() * SampleRate)
}

// Synthesize renders tones as signed 16-bit little-endian mono PCM.
func Synthesize(tones []Tone) []byte {
	total := 0
	for _, t := range tones {
		total += samplesFor(t.Duration)
	}

	pcm := make([]byte, 0, total*bytesPerSample)
	buf := make([]byte, bytesPerSample)
	fadeLen := samplesFor(fade)

	for _, t := range tones {
		n := samplesFor(t.Duration)
		for i := 0; i < n; i++ {
			var v float64
			if t.Freq > 0 {
				v = Volume * math.Sin(2*math.Pi*t.Freq*float64(i)/SampleRate)
				if i < fadeLen {
					v *= float64(i) / float64(fadeLen)
				}
				if tail := n - 1 - i; tail < fadeLen {
					v *= float64(tail) / float64(fadeLen)
				}
			}
			binary.LittleEndian.PutUint16(buf, uint16(int16(v*math.MaxInt16)))
			pcm = append(pcm, buf...)
		}
	}
	return pcm
}
