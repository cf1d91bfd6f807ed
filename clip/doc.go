// SPDX-License-Identifier: EPL-2.0

// Package clip provides the fixed-capacity PCM buffer asset that backs
// synthesized sounds.
//
// A Clip wraps a github.com/go-audio/audio FloatBuffer with the creation
// contract the synthesis engine relies on: capacity is fixed when the clip
// is created, contents are rewritten through whole-buffer writes, and a
// length change always means creating a new clip.
//
// # Creating Clips
//
//	c, err := clip.New(8000, 1, 8000, false)
//	if err != nil {
//	    // Handle error
//	}
//
// # Writing and Reading
//
//	err := c.SetData(samples, 0)
//	into := make([]float64, c.Len())
//	err = c.GetData(into, 0)
//
// Writes past the clip capacity are silently dropped and short writes leave
// the tail untouched, mirroring the fixed-size asset the engine targets.
// Keeping a sound's sample slice and its clip the same length is the
// caller's responsibility; the synthesis engine maintains it on every
// operation that changes length.
package clip
