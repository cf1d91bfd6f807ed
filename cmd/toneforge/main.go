// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/toneforge/toneforge"
	"github.com/toneforge/toneforge/formats/wav"
	"github.com/toneforge/toneforge/key"
	"github.com/toneforge/toneforge/player"
	"github.com/toneforge/toneforge/synth"
)

// Config holds the application configuration.
type Config struct {
	Keys      map[string]int `toml:"keys"`
	Frequency float64        `toml:"frequency"`
	Rate      int            `toml:"rate"`
	Duration  float64        `toml:"duration"`
	Debug     bool           `toml:"debug"`
}

func defaultConfig() Config {
	return Config{
		Frequency: 440,
		Rate:      44100,
		Duration:  1.0,
	}
}

// loadConfig merges TOML files from standard locations; later files
// override earlier ones and the file is optional.
func loadConfig(log zerolog.Logger) Config {
	cfg := defaultConfig()

	configFiles := []string{
		"/usr/local/etc/toneforge.toml",
		"./toneforge.toml",
	}

	for _, file := range configFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(file, &cfg); err != nil {
			log.Warn().Err(err).Str("path", file).Msg("Failed to load config file")
			continue
		}
		log.Debug().Str("path", file).Msg("Loaded config")
	}

	return cfg
}

func main() {
	keysFlag := flag.String("keys", "", "Comma-separated key sequence to play (e.g. C,E,G)")
	freq := flag.Float64("freq", 0, "Tone frequency in Hz (overrides config)")
	rate := flag.Int("rate", 0, "Sample rate in Hz (overrides config)")
	duration := flag.Float64("duration", 0, "Duration in seconds (overrides config)")
	volume := flag.Float64("volume", 1.0, "Volume scale applied after synthesis")
	stretch := flag.Int("stretch", 1, "Repeat factor for pitch/tempo stretch")
	out := flag.String("out", "", "Output WAV path")
	play := flag.Bool("play", false, "Play the result through the audio device")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)

	cfg := loadConfig(log)
	if *debug || cfg.Debug {
		log = log.Level(zerolog.DebugLevel)
	}
	if *freq != 0 {
		cfg.Frequency = *freq
	}
	if *rate != 0 {
		cfg.Rate = *rate
	}
	if *duration != 0 {
		cfg.Duration = *duration
	}

	table := key.Default()
	for name, hz := range cfg.Keys {
		table[key.Key(name)] = hz
	}

	eng := synth.NewEngine(table)
	src := synth.Sound{
		Frequency:    cfg.Frequency,
		Wave:         synth.WaveSine,
		SampleRate:   cfg.Rate,
		DurationSecs: cfg.Duration,
	}

	var (
		snd *synth.Sound
		err error
	)
	if *keysFlag != "" {
		var keys []key.Key
		for _, name := range strings.Split(*keysFlag, ",") {
			keys = append(keys, key.Key(strings.TrimSpace(name)))
		}
		snd, err = toneforge.SynthesizeKeys(eng, src, keys...)
	} else {
		snd, err = eng.CreateTone(src)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Synthesis failed")
	}

	if *volume != 1.0 {
		synth.ScaleVolume(snd.Samples, *volume)
		if err := snd.SyncClip(); err != nil {
			log.Fatal().Err(err).Msg("Failed to rewrite clip")
		}
	}
	if *stretch > 1 {
		if snd, err = synth.StretchPitch(snd, *stretch); err != nil {
			log.Fatal().Err(err).Msg("Stretch failed")
		}
	}

	log.Info().
		Float64("frequency_hz", snd.Frequency).
		Int("samples", snd.SampleLength).
		Int("rate", snd.SampleRate).
		Msg("Synthesized sound")

	if *out != "" {
		file, err := os.Create(*out)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create output file")
		}
		if err := wav.Encode(file, snd); err != nil {
			file.Close()
			log.Fatal().Err(err).Msg("Failed to encode WAV")
		}
		if err := file.Close(); err != nil {
			log.Fatal().Err(err).Msg("Failed to close output file")
		}
		log.Info().Str("path", *out).Msg("Wrote WAV")
	}

	if *play {
		p, err := player.NewOtoPlayer(log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open audio device")
		}
		defer p.Close()
		if err := p.Play(snd); err != nil {
			log.Fatal().Err(err).Msg("Playback failed")
		}
	}

	if *out == "" && !*play {
		log.Info().Msg("Nothing to do; pass -out and/or -play")
	}
}
