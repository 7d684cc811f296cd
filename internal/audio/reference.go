package audio

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/wav"
)

var (
	ErrRefNotFound = errors.New("reference audio not found")
	ErrBadAudio    = errors.New("reference audio not decodable")
)

// LoadReference reads a reference WAV file and normalizes it to the 24 kHz
// mono layout the models expect. The returned clip always has SampleRate
// 24000 and a single channel.
func LoadReference(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRefNotFound, path)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrBadAudio, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadAudio, path, err)
	}
	if buf == nil || len(buf.Data) == 0 {
		return nil, fmt.Errorf("%w: %s: no samples", ErrBadAudio, path)
	}

	clip := Normalize(&Clip{
		Samples:    rescale(buf.Data, int(dec.BitDepth)),
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
	})
	if clip.SampleRate != SampleRate || clip.Channels != ChannelCount {
		return nil, fmt.Errorf("%w: %s: normalization failed", ErrBadAudio, path)
	}
	return clip, nil
}

// Normalize downmixes to mono and resamples to 24 kHz. An already-normalized
// clip passes through unchanged.
func Normalize(c *Clip) *Clip {
	out := c
	if out.Channels > 1 {
		out = downmix(out)
	}
	if out.SampleRate != SampleRate {
		out = resample(out, SampleRate)
	}
	return out
}

// rescale shifts samples of arbitrary source bit depth into the 16-bit range.
func rescale(data []int, bitDepth int) []int {
	if bitDepth == BitDepth || bitDepth == 0 {
		return data
	}
	shift := bitDepth - BitDepth
	out := make([]int, len(data))
	for i, v := range data {
		if shift > 0 {
			out[i] = v >> shift
		} else {
			out[i] = v << -shift
		}
	}
	return out
}

func downmix(c *Clip) *Clip {
	frames := len(c.Samples) / c.Channels
	mono := make([]int, frames)
	for i := 0; i < frames; i++ {
		sum := 0
		for ch := 0; ch < c.Channels; ch++ {
			sum += c.Samples[i*c.Channels+ch]
		}
		mono[i] = sum / c.Channels
	}
	return &Clip{Samples: mono, SampleRate: c.SampleRate, Channels: 1}
}

// resample converts the clip to the target rate by linear interpolation.
// Deterministic: the same input samples always produce the same output.
func resample(c *Clip, rate int) *Clip {
	in := c.Samples
	n := int(int64(len(in)) * int64(rate) / int64(c.SampleRate))
	out := make([]int, n)
	step := float64(c.SampleRate) / float64(rate)
	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		if j >= len(in)-1 {
			out[i] = clamp16(in[len(in)-1])
			continue
		}
		frac := pos - float64(j)
		v := float64(in[j])*(1-frac) + float64(in[j+1])*frac
		out[i] = clamp16(int(math.Round(v)))
	}
	return &Clip{Samples: out, SampleRate: rate, Channels: c.Channels}
}

func clamp16(v int) int {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return v
}
