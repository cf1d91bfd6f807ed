// SPDX-License-Identifier: EPL-2.0

package player

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/rs/zerolog"

	"github.com/toneforge/toneforge/synth"
	"github.com/toneforge/toneforge/utils"
)

const (
	// OutputRate is the device sample rate; sounds at other rates are
	// resampled before playback.
	OutputRate = 44100
	// ChannelCount represents mono audio
	ChannelCount = 1
)

// Player plays completed sound descriptors.
type Player interface {
	Play(s *synth.Sound) error
	Close() error
}

var (
	otoCtx *oto.Context
	once   sync.Once
	ctxErr error
)

// initOtoContext initializes the oto context singleton.
func initOtoContext() (*oto.Context, error) {
	once.Do(func() {
		op := &oto.NewContextOptions{}
		op.SampleRate = OutputRate
		op.ChannelCount = ChannelCount
		op.Format = oto.FormatSignedInt16LE

		var readyChan chan struct{}
		otoCtx, readyChan, ctxErr = oto.NewContext(op)
		if ctxErr == nil {
			<-readyChan
		}
	})
	return otoCtx, ctxErr
}

// OtoPlayer plays sounds through the ebitengine/oto/v3 library.
type OtoPlayer struct {
	log zerolog.Logger
	ctx *oto.Context
}

// NewOtoPlayer creates a player bound to the shared oto context.
func NewOtoPlayer(log zerolog.Logger) (*OtoPlayer, error) {
	ctx, err := initOtoContext()
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize oto audio context")
		return nil, fmt.Errorf("failed to initialize audio context: %w", err)
	}

	return &OtoPlayer{
		log: log.With().Str("player_type", "oto").Logger(),
		ctx: ctx,
	}, nil
}

// Play blocks until the sound's samples finish playing. Sounds synthesized
// at a rate other than OutputRate are resampled first; the descriptor is
// not modified.
func (p *OtoPlayer) Play(s *synth.Sound) error {
	if len(s.Samples) == 0 {
		return synth.ErrNoSamples
	}

	p.log.Debug().
		Float64("frequency_hz", s.Frequency).
		Int("sample_rate", s.SampleRate).
		Int("samples", len(s.Samples)).
		Msg("Playing sound")

	samples := s.Samples
	if s.SampleRate != OutputRate {
		samples = Resample(samples, s.SampleRate, OutputRate)
	}

	data := make([]byte, len(samples)*2)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(utils.FloatToInt16(v)))
	}

	player := p.ctx.NewPlayer(bytes.NewReader(data))
	defer player.Close()
	player.Play()

	for player.IsPlaying() {
		time.Sleep(time.Millisecond)
	}

	if err := player.Err(); err != nil {
		return fmt.Errorf("oto player error: %w", err)
	}
	return nil
}

// Close releases player resources. The oto context is shared process-wide
// and stays open.
func (p *OtoPlayer) Close() error {
	p.log.Debug().Msg("Closing OtoPlayer")
	return nil
}

// StubPlayer logs playback and simulates its duration; used in tests and
// headless environments.
type StubPlayer struct {
	log zerolog.Logger
}

// NewStubPlayer creates a new StubPlayer.
func NewStubPlayer(log zerolog.Logger) *StubPlayer {
	return &StubPlayer{log: log.With().Str("player_type", "stub").Logger()}
}

// Play simulates playing a sound by logging and sleeping.
func (p *StubPlayer) Play(s *synth.Sound) error {
	p.log.Debug().
		Float64("frequency_hz", s.Frequency).
		Float64("duration_secs", s.DurationSecs).
		Msg("Simulating playing sound")

	time.Sleep(time.Duration(s.DurationSecs * float64(time.Second)))
	return nil
}

// Close cleans up the StubPlayer resources.
func (p *StubPlayer) Close() error {
	p.log.Debug().Msg("Closing StubPlayer")
	return nil
}
