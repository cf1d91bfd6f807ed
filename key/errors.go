// SPDX-License-Identifier: EPL-2.0

package key

import "errors"

var (
	ErrUnknownKey       = errors.New("key not present in table")
	ErrInvalidFrequency = errors.New("key frequency must be positive")
)
