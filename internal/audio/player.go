package audio

import (
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// StreamPlayer plays s16le PCM chunks (24 kHz mono) as they arrive.
type StreamPlayer struct {
	player *oto.Player
	pw     *io.PipeWriter
	done   chan struct{}
	once   sync.Once
}

var (
	otoCtx     *oto.Context
	otoCtxOnce sync.Once
)

func playbackContext() *oto.Context {
	otoCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: ChannelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		var err error
		otoCtx, ready, err = oto.NewContext(op)
		if err != nil {
			panic("oto init: " + err.Error())
		}
		<-ready
	})
	return otoCtx
}

// NewStreamPlayer starts playback; feed it chunks with Write and finish with
// Close, which blocks until the last sample is played.
func NewStreamPlayer() *StreamPlayer {
	pr, pw := io.Pipe()
	player := playbackContext().NewPlayer(pr)

	sp := &StreamPlayer{
		player: player,
		pw:     pw,
		done:   make(chan struct{}),
	}

	go func() {
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		sp.once.Do(func() { close(sp.done) })
	}()

	return sp
}

// Write queues PCM data for playback. Safe to call from any goroutine.
func (sp *StreamPlayer) Write(pcm []byte) {
	sp.pw.Write(pcm)
}

// Close signals end of audio and waits for playback to drain.
func (sp *StreamPlayer) Close() {
	sp.pw.Close()
	<-sp.done
}
