// SPDX-License-Identifier: EPL-2.0

// Package key holds the piano key table: a small fixed set of note names
// mapped to integer frequencies in Hz.
//
// The table is configuration the synthesis engine consumes read-only.
// Lookups are exact-match; a missing key is an error, never a default.
//
// # Default Table
//
// Default covers one octave from middle C plus the C above it, equal
// temperament rounded to whole Hz:
//
//	t := key.Default()
//	hz, err := t.Frequency(key.A) // 440
//
// # Loading From Configuration
//
// Tables load from TOML; entries layer over the defaults, so a file only
// needs to list the keys it changes:
//
//	[keys]
//	A = 442
//	C3 = 1047
//
//	t, err := key.Load("keys.toml")
package key
