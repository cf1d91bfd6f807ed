// SPDX-License-Identifier: EPL-2.0

package toneforge_test

import (
	"bytes"
	"fmt"

	"github.com/toneforge/toneforge"
	"github.com/toneforge/toneforge/key"
	"github.com/toneforge/toneforge/synth"
)

func ExampleRenderWAV() {
	eng := synth.NewEngine(key.Default())
	tone, err := eng.CreateTone(synth.Sound{
		Frequency:    440,
		SampleRate:   8000,
		DurationSecs: 0.01,
		Wave:         synth.WaveSine,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	var buf bytes.Buffer
	if err := toneforge.RenderWAV(&buf, tone); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("samples:", tone.SampleLength)
	fmt.Println("wav bytes:", buf.Len())
	// Output:
	// samples: 80
	// wav bytes: 204
}

func ExampleSynthesizeKeys() {
	eng := synth.NewEngine(key.Default())
	src := synth.Sound{
		SampleRate:   8000,
		DurationSecs: 0.25,
		Wave:         synth.WaveSine,
	}

	melody, err := toneforge.SynthesizeKeys(eng, src, key.C, key.D, key.E, key.C)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("samples:", melody.SampleLength)
	fmt.Println("duration:", melody.DurationSecs)
	// Output:
	// samples: 2000
	// duration: 0.25
}
