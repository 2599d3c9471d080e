package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/automoto/nightfall/config"
)

// cueGain keeps stacked cues from clipping.
const cueGain = 0.35

// SynthesizeCue renders the tones of a sound cue as 16-bit little-endian
// stereo PCM at sampleRate, the format ebiten's audio players take.
func SynthesizeCue(id config.SoundID, sampleRate int) ([]byte, error) {
	tones, ok := config.Sound.Cues[id]
	if !ok || len(tones) == 0 {
		return nil, fmt.Errorf("synthesize %s: no tones", id)
	}
	sr := beep.SampleRate(sampleRate)

	parts := make([]beep.Streamer, 0, len(tones))
	total := 0
	for _, t := range tones {
		tone, err := generators.SineTone(sr, t.Freq)
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", id, err)
		}
		n := sr.N(t.Duration)
		total += n
		parts = append(parts, beep.Take(n, fade(tone, n, sr.N(fadeTime))))
	}

	stream := &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: math.Log2(cueGain)}
	return encodePCM(stream, total), nil
}

// fadeTime smooths tone edges so sequenced notes do not click.
const fadeTime = 4 * time.Millisecond

func fade(s beep.Streamer, length, ramp int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			gain := 1.0
			if ramp > 0 {
				if pos < ramp {
					gain = float64(pos) / float64(ramp)
				} else if left := length - pos; left < ramp {
					gain = float64(left) / float64(ramp)
				}
			}
			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}
		return n, ok
	})
}

func encodePCM(s beep.Streamer, samples int) []byte {
	out := make([]byte, 0, samples*4)
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}
