// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrInvalidDuration", ErrInvalidDuration},
		{"ErrNoClip", ErrNoClip},
		{"ErrUnsupportedWave", ErrUnsupportedWave},
		{"ErrNoKeys", ErrNoKeys},
		{"ErrNoSounds", ErrNoSounds},
		{"ErrNoSamples", ErrNoSamples},
		{"ErrIndexOutOfRange", ErrIndexOutOfRange},
		{"ErrInvalidParameter", ErrInvalidParameter},
	}

	for _, tt := range sentinels {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatalf("%s is nil", tt.name)
			}
			if !errors.Is(tt.err, tt.err) {
				t.Errorf("errors.Is() failed for %s", tt.name)
			}
			if tt.err.Error() == "" {
				t.Errorf("%s has empty message", tt.name)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	if errors.Is(ErrInvalidDuration, ErrInvalidParameter) {
		t.Error("ErrInvalidDuration and ErrInvalidParameter must be distinct")
	}
	if errors.Is(ErrNoSounds, ErrNoSamples) {
		t.Error("ErrNoSounds and ErrNoSamples must be distinct")
	}
}
