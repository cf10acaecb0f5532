package timer

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	sampleRate    = beep.SampleRate(44100)
	toneFrequency = 800
	toneLength    = time.Second
	resampleQual  = 4
)

// Sound plays the completion alert through the system speaker. If the
// configured file is missing or cannot be decoded, a short synthesized tone
// plays instead.
type Sound struct {
	log  *slog.Logger
	file string

	initOnce sync.Once
	initErr  error
}

// NewSound returns an alerter for file, which may be empty.
func NewSound(file string, log *slog.Logger) *Sound {
	return &Sound{
		file: file,
		log:  log,
	}
}

// Alert starts playback and returns without waiting for it to finish.
func (s *Sound) Alert() error {
	s.initOnce.Do(func() {
		bufferSize := 10

		s.initErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	if s.initErr != nil {
		return s.initErr
	}

	stream, err := s.fileStream()
	if err != nil {
		if s.file != "" {
			s.log.Debug(
				"alert sound unavailable, using tone",
				slog.String("file", s.file),
				slog.Any("error", err),
			)
		}

		stream, err = tone()
		if err != nil {
			return err
		}
	}

	speaker.Play(stream)

	return nil
}

// fileStream decodes the configured file and resamples it to the speaker's
// rate. The file is closed once playback ends.
func (s *Sound) fileStream() (beep.Streamer, error) {
	if s.file == "" {
		return nil, os.ErrNotExist
	}

	f, err := os.Open(s.file)
	if err != nil {
		return nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(s.file)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		err = errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()
		return nil, err
	}

	resampled := beep.Resample(resampleQual, format.SampleRate, sampleRate, stream)

	return beep.Seq(resampled, beep.Callback(func() {
		_ = stream.Close()
	})), nil
}

// tone returns a one second 800 Hz sine wave at reduced volume.
func tone() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, toneFrequency)
	if err != nil {
		return nil, err
	}

	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(toneLength), sine),
		Base:     2,
		Volume:   -1.7,
	}, nil
}
