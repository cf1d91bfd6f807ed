// SPDX-License-Identifier: EPL-2.0

// Package player turns completed sound descriptors into audible output.
//
// The core never touches playback hardware; this package is the
// collaborator that does. OtoPlayer drives github.com/ebitengine/oto/v3
// through a process-wide context at OutputRate; sounds synthesized at a
// different rate are resampled on the way out with cubic interpolation.
//
//	p, err := player.NewOtoPlayer(log)
//	if err != nil {
//	    // No audio device; fall back to the stub
//	    p = player.NewStubPlayer(log)
//	}
//	defer p.Close()
//	err = p.Play(snd)
//
// StubPlayer logs and sleeps instead of playing, for tests and headless
// environments.
package player
