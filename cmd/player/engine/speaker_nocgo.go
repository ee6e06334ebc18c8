//go:build !cgo && !windows && !darwin

package engine

import (
	"fmt"

	"github.com/gopxl/beep/v2"
)

// AudioAvailable indicates whether audio playback is supported in this build.
// Audio on Linux requires cgo for the native sound libraries.
const AudioAvailable = false

// OpenSpeaker always fails when cgo is disabled.
func OpenSpeaker(rate beep.SampleRate) (*Output, func(), error) {
	return nil, nil, fmt.Errorf("%w: built without cgo", ErrDevice)
}
