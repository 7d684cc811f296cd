package audio

import (
	"fmt"
	"time"
)

const (
	SampleRate   = 24000
	ChannelCount = 1
	BitDepth     = 16
)

// Advisory window for reference clip length. Clips outside it still work,
// cloning quality just tends to suffer.
const (
	minRefDuration = 3 * time.Second
	maxRefDuration = 10 * time.Second
)

// Clip holds decoded PCM samples in the 16-bit signed range. Samples are
// interleaved when Channels > 1.
type Clip struct {
	Samples    []int
	SampleRate int
	Channels   int
}

func (c *Clip) Duration() time.Duration {
	frames := int64(len(c.Samples)) / int64(c.Channels)
	return time.Duration(frames * int64(time.Second) / int64(c.SampleRate))
}

// Advisories returns non-fatal warnings about a reference clip.
func Advisories(c *Clip) []string {
	var out []string
	d := c.Duration().Seconds()
	if d < minRefDuration.Seconds() || d > maxRefDuration.Seconds() {
		out = append(out, fmt.Sprintf("reference clip is %.1fs; 3-10s of speech works best", d))
	}
	return out
}
