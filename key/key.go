// SPDX-License-Identifier: EPL-2.0

package key

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Key names one piano key.
type Key string

// The keys of one octave starting at middle C, plus the C above it.
const (
	C  Key = "C"
	D  Key = "D"
	E  Key = "E"
	F  Key = "F"
	G  Key = "G"
	A  Key = "A"
	B  Key = "B"
	C2 Key = "C2"
)

// Table maps keys to their fundamental frequency in whole Hz.
type Table map[Key]int

// Default returns the built-in table, equal temperament rounded to
// whole Hz around A = 440.
func Default() Table {
	return Table{
		C:  262,
		D:  294,
		E:  330,
		F:  349,
		G:  392,
		A:  440,
		B:  494,
		C2: 523,
	}
}

// Frequency resolves a key by exact match. A key absent from the table is
// a hard error; there is no fallback frequency.
func (t Table) Frequency(k Key) (int, error) {
	hz, ok := t[k]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, k)
	}
	return hz, nil
}

// tableConfig is the on-disk layout:
//
//	[keys]
//	C = 262
//	D = 294
type tableConfig struct {
	Keys map[string]int `toml:"keys"`
}

// Load reads a key table from a TOML file. Keys present in the file extend
// or override the default table, so a partial file is valid.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key table: %w", err)
	}
	return Decode(string(data))
}

// Decode parses a TOML document into a key table layered over Default.
func Decode(data string) (Table, error) {
	var cfg tableConfig
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse key table: %w", err)
	}

	t := Default()
	for name, hz := range cfg.Keys {
		if hz <= 0 {
			return nil, fmt.Errorf("%w: %q = %d", ErrInvalidFrequency, name, hz)
		}
		t[Key(name)] = hz
	}
	return t, nil
}
