// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio into sound descriptors using
// github.com/hajimehoshi/go-mp3.
//
//	dec := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	snd, err := dec.Decode(file)
//
// go-mp3 always emits interleaved stereo 16-bit PCM; the decoder averages
// the channel pair down to mono before wrapping the result in a
// *synth.Sound.
package mp3
