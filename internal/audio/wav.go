package audio

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV writes raw s16le PCM (24 kHz mono) to path as a PCM WAV file,
// creating parent directories and overwriting any existing file.
func WriteWAV(path string, pcm []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(f, SampleRate, BitDepth, ChannelCount, 1)
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: ChannelCount, SampleRate: SampleRate},
		Data:           PCMToSamples(pcm),
		SourceBitDepth: BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// WAVBytes wraps a clip in a minimal 16-bit PCM WAV container, for embedding
// in engine payloads.
func WAVBytes(c *Clip) []byte {
	pcm := SamplesToPCM(c.Samples)
	dataLen := uint32(len(pcm))
	sr := uint32(c.SampleRate)
	blockAlign := uint32(c.Channels) * BitDepth / 8

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], dataLen+36)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:24], uint16(c.Channels))
	binary.LittleEndian.PutUint32(header[24:28], sr)
	binary.LittleEndian.PutUint32(header[28:32], sr*blockAlign)
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], BitDepth)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataLen)

	return append(header, pcm...)
}

// PCMToSamples decodes s16le bytes into samples. A trailing odd byte is dropped.
func PCMToSamples(pcm []byte) []int {
	n := len(pcm) / 2
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = int(int16(binary.LittleEndian.Uint16(pcm[2*i:])))
	}
	return out
}

// SamplesToPCM encodes samples as s16le bytes, clamping to the 16-bit range.
func SamplesToPCM(samples []int) []byte {
	out := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(clamp16(v))))
	}
	return out
}
