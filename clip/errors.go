// SPDX-License-Identifier: EPL-2.0

package clip

import "errors"

var (
	ErrInvalidLength    = errors.New("clip length must be positive")
	ErrInvalidChannels  = errors.New("clip channel count must be positive")
	ErrOffsetOutOfRange = errors.New("offset outside clip bounds")
)
