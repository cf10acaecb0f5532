package shell

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/compass/catalog"
	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/internal/static"
)

// LoadBuiltin installs the built-in catalog into dir if it isn't there and
// loads it. An unreadable or invalid copy in dir falls back to the embedded
// catalog.
func LoadBuiltin(dir string, logger *slog.Logger) ([]models.Resource, error) {
	if err := static.Install(dir); err != nil {
		logger.Warn("installing static files failed", slog.Any("error", err))
	}

	b, err := os.ReadFile(filepath.Join(dir, static.ResourcesFile))
	if err == nil {
		var resources []models.Resource

		resources, err = catalog.Parse(b)
		if err == nil {
			return resources, nil
		}
	}

	logger.Warn(
		"using embedded resource catalog",
		slog.String("dir", dir),
		slog.Any("error", err),
	)

	b, err = static.Read(static.ResourcesFile)
	if err != nil {
		return nil, err
	}

	return catalog.Parse(b)
}
