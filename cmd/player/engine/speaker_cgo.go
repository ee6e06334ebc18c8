//go:build (linux && cgo) || windows || darwin

package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioAvailable indicates whether audio playback is supported in this build.
const AudioAvailable = true

// OpenSpeaker initializes the output device and starts streaming an empty
// Output into it. The returned func releases the device.
func OpenSpeaker(rate beep.SampleRate) (*Output, func(), error) {
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDevice, err)
	}

	out := NewOutput(rate, speakerLock{})
	speaker.Play(out)
	slog.Info("audio device opened", "sampleRate", int(rate))

	return out, func() {
		out.Clear()
		speaker.Clear()
		speaker.Close()
	}, nil
}

// speakerLock serializes pipeline changes with the speaker goroutine.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }
