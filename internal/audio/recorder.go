package audio

import (
	"sync"
	"time"

	"github.com/gen2brain/malgo"
)

// Capture records from the default input device for the given duration and
// returns s16le PCM at 24 kHz mono.
func Capture(d time.Duration) ([]byte, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, err
	}
	defer ctx.Free()

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Capture)
	deviceConfig.Capture.Format = malgo.FormatS16
	deviceConfig.Capture.Channels = ChannelCount
	deviceConfig.SampleRate = SampleRate

	var mu sync.Mutex
	var buf []byte

	callbacks := malgo.DeviceCallbacks{
		Data: func(outputSamples, inputSamples []byte, frameCount uint32) {
			mu.Lock()
			buf = append(buf, inputSamples...)
			mu.Unlock()
		},
	}

	device, err := malgo.InitDevice(ctx.Context, deviceConfig, callbacks)
	if err != nil {
		return nil, err
	}
	defer device.Uninit()

	if err := device.Start(); err != nil {
		return nil, err
	}
	time.Sleep(d)
	device.Stop()

	mu.Lock()
	defer mu.Unlock()
	return buf, nil
}
