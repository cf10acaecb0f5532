// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/compass/internal/osutil"
)

const (
	filesDir = "files"

	// ResourcesFile is the built-in resource catalog.
	ResourcesFile = "resources.yml"
)

//go:embed files/*
var embeddedFiles embed.FS

// Read returns the embedded copy of name.
func Read(name string) ([]byte, error) {
	return embeddedFiles.ReadFile(filesDir + "/" + name)
}

// Install copies every embedded file into dir unless a file with the same
// name is already there, so that user edits survive upgrades.
func Install(dir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			destPath := filepath.Join(dir, strings.TrimPrefix(path, filesDir+"/"))

			// Only write if file does not already exist
			if _, err := os.Stat(destPath); os.IsNotExist(err) {
				if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
					return err
				}

				if err := os.WriteFile(destPath, b, osutil.FilePermission); err != nil {
					return err
				}
			}

			return nil
		},
	)
}
