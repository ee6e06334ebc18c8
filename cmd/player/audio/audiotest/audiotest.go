// Package audiotest writes small audio fixtures for tests.
package audiotest

import (
	"os"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// SampleRate is the rate of every fixture written by this package.
const SampleRate = beep.SampleRate(8000)

// WriteSilentWAV writes a mono WAV file of the given length to path.
func WriteSilentWAV(t testing.TB, path string, length time.Duration) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: SampleRate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, beep.Silence(SampleRate.N(length)), format); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
}

// WriteGarbage writes bytes that no decoder accepts.
func WriteGarbage(t testing.TB, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("definitely not audio"), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
