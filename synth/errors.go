// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrInvalidDuration  = errors.New("sample duration must be positive")
	ErrNoClip           = errors.New("sound has no backing clip")
	ErrUnsupportedWave  = errors.New("wave type not implemented")
	ErrNoKeys           = errors.New("key sequence is empty")
	ErrNoSounds         = errors.New("no sounds to mix")
	ErrNoSamples        = errors.New("sound has no samples")
	ErrIndexOutOfRange  = errors.New("insert position outside buffer bounds")
	ErrInvalidParameter = errors.New("repeat factor must be a positive integer")
)
