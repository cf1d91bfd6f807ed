// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio into sound descriptors using
// github.com/jfreymuth/oggvorbis.
//
//	dec := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	snd, err := dec.Decode(file)
//
// The full stream is decoded in one pass, averaged down to mono, and
// wrapped in a *synth.Sound with a written clip.
package vorbis
