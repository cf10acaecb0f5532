package shell

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/internal/pathutil"
	"github.com/ayoisaiah/compass/internal/timeutil"
)

// Export writes the log, learning progress and settings to w as an indented
// JSON bundle.
func (s *Shell) Export(w io.Writer) error {
	b := models.Bundle{
		Progress:         s.Log.Entries(),
		LearningProgress: s.Catalog.Progress(),
		Settings:         s.settings,
		ExportDate:       timeutil.ISO(s.now()),
	}

	if b.Progress == nil {
		b.Progress = []models.LogEntry{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(b)
}

// ExportFileName is the default file name for an export made now.
func (s *Shell) ExportFileName() string {
	return pathutil.ExportFileName(s.now().Format("2006-01-02"))
}

// importBundle keeps each section raw so that absent sections can be told
// apart from empty ones.
type importBundle struct {
	Progress         json.RawMessage `json:"progress"`
	LearningProgress json.RawMessage `json:"learningProgress"`
	Settings         json.RawMessage `json:"settings"`
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// validateProgress rejects entries that recordInteraction could not have
// produced.
func validateProgress(p models.ProgressMap) error {
	for id, lp := range p {
		if lp.TimesAccessed < 1 || lp.StartedAt.IsZero() {
			return errInvalidProgress.Fmt(id)
		}
	}

	return nil
}

// Import replaces the sections present in the bundle read from r. Nothing is
// changed unless the whole bundle parses.
func (s *Shell) Import(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errInvalidBundle.Wrap(err)
	}

	var in importBundle

	if err = json.Unmarshal(data, &in); err != nil {
		return errInvalidBundle.Wrap(err)
	}

	var (
		entries  []models.LogEntry
		progress models.ProgressMap
		settings models.Settings
	)

	if present(in.Progress) {
		if err = json.Unmarshal(in.Progress, &entries); err != nil {
			return errInvalidBundle.Wrap(err)
		}
	}

	if present(in.LearningProgress) {
		if err = json.Unmarshal(in.LearningProgress, &progress); err != nil {
			return errInvalidBundle.Wrap(err)
		}

		if err = validateProgress(progress); err != nil {
			return errInvalidBundle.Wrap(err)
		}
	}

	if present(in.Settings) {
		settings, err = s.mergedSettings(in.Settings)
		if err != nil {
			return errInvalidBundle.Wrap(err)
		}
	}

	if present(in.Progress) {
		s.Log.Replace(entries)
	}

	if present(in.LearningProgress) {
		s.Catalog.ReplaceProgress(progress)
	}

	if present(in.Settings) {
		s.UpdateSettings(func(st *models.Settings) {
			*st = settings
		})
	}

	s.logger.Info(
		"data imported",
		slog.Bool("progress", present(in.Progress)),
		slog.Bool("learning_progress", present(in.LearningProgress)),
		slog.Bool("settings", present(in.Settings)),
	)

	return nil
}
