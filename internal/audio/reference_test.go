package audio_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"

	"github.com/ontypehq/timbre/internal/audio"
)

// writeTestWAV writes interleaved 16-bit samples as a WAV file.
func writeTestWAV(t *testing.T, path string, rate, channels int, samples []int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	err = enc.Write(&gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           samples,
		SourceBitDepth: 16,
	})
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
}

// sine produces n frames of a test tone, interleaved across channels.
func sine(n, channels int) []int {
	out := make([]int, n*channels)
	for i := 0; i < n; i++ {
		v := int(10000 * math.Sin(2*math.Pi*float64(i)/100))
		for ch := 0; ch < channels; ch++ {
			out[i*channels+ch] = v
		}
	}
	return out
}

func TestLoadReferenceNormalizes16kStereo(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ref.wav")
	writeTestWAV(t, path, 16000, 2, sine(16000, 2)) // 1s of 16 kHz stereo

	clip, err := audio.LoadReference(path)
	require.NoError(t, err)
	require.Equal(t, audio.SampleRate, clip.SampleRate)
	require.Equal(t, audio.ChannelCount, clip.Channels)
	require.Len(t, clip.Samples, 24000)
	require.InDelta(t, 1.0, clip.Duration().Seconds(), 0.01)
}

func TestLoadReferencePassesThroughNormalizedInput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ref.wav")
	samples := sine(4*audio.SampleRate, 1)
	writeTestWAV(t, path, audio.SampleRate, 1, samples)

	clip, err := audio.LoadReference(path)
	require.NoError(t, err)
	require.Equal(t, samples, clip.Samples)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	clip := &audio.Clip{
		Samples:    sine(audio.SampleRate, 1),
		SampleRate: audio.SampleRate,
		Channels:   1,
	}
	require.Same(t, clip, audio.Normalize(clip))
}

func TestLoadReferenceMissingFile(t *testing.T) {
	t.Parallel()

	_, err := audio.LoadReference(filepath.Join(t.TempDir(), "nope.wav"))
	require.ErrorIs(t, err, audio.ErrRefNotFound)
}

func TestLoadReferenceUndecodable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "noise.wav")
	require.NoError(t, os.WriteFile(path, []byte("this is not audio"), 0644))

	_, err := audio.LoadReference(path)
	require.ErrorIs(t, err, audio.ErrBadAudio)
}

func TestAdvisories(t *testing.T) {
	t.Parallel()

	short := &audio.Clip{Samples: make([]int, audio.SampleRate), SampleRate: audio.SampleRate, Channels: 1}
	require.Len(t, audio.Advisories(short), 1)

	long := &audio.Clip{Samples: make([]int, 15*audio.SampleRate), SampleRate: audio.SampleRate, Channels: 1}
	require.Len(t, audio.Advisories(long), 1)

	good := &audio.Clip{Samples: make([]int, 5*audio.SampleRate), SampleRate: audio.SampleRate, Channels: 1}
	require.Empty(t, audio.Advisories(good))
}
