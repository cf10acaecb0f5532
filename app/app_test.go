package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/compass/internal/apperr"
	"github.com/ayoisaiah/compass/internal/config"
	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/internal/pathutil"
	"github.com/ayoisaiah/compass/tui"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "compass-app")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	_ = os.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	_ = os.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	_ = os.Setenv("NO_COLOR", "1")
	_ = os.Unsetenv("COMPASS_ENV")
	_ = os.Unsetenv("COMPASS_ASSISTANT_API_KEY")

	xdg.Reload()

	if err = pathutil.Initialize(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	code := m.Run()

	_ = os.RemoveAll(dir)

	os.Exit(code)
}

// run executes the CLI and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer

	old := config.Stdout
	config.Stdout = &buf

	t.Cleanup(func() {
		config.Stdout = old
	})

	err := Get().Run(append([]string{"compass"}, args...))

	return buf.String(), err
}

func TestLogAddAndList(t *testing.T) {
	_, err := run(t, "log", "add", "wrote", "the", "tests")
	require.NoError(t, err)

	out, err := run(t, "log", "list", "--json")
	require.NoError(t, err)

	var entries []models.LogEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.NotEmpty(t, entries)
	assert.Equal(t, "wrote the tests", entries[0].Message)

	out, err = run(t, "log", "list", "--json", "--since", "2099-01-01")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestMissingArgument(t *testing.T) {
	_, err := run(t, "log", "add")
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	_, err = run(t, "resources", "start", "abc")
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestResourcesAddAndStart(t *testing.T) {
	_, err := run(t,
		"resources", "add",
		"--title", "Effective Go",
		"--url", "https://go.dev/doc/effective_go",
		"--topic", "style",
		"--topic", "idioms",
	)
	require.NoError(t, err)

	out, err := run(t, "resources", "list", "--custom", "--json")
	require.NoError(t, err)

	var custom []models.Resource
	require.NoError(t, json.Unmarshal([]byte(out), &custom))
	require.NotEmpty(t, custom)

	added := custom[len(custom)-1]
	assert.Equal(t, "Effective Go", added.Title)
	assert.Equal(t, "Custom", added.Category)
	assert.Equal(t, []string{"style", "idioms"}, added.Topics)

	id := fmt.Sprintf("%d", added.ID)

	_, err = run(t, "resources", "complete", id)
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	_, err = run(t, "resources", "start", id)
	require.NoError(t, err)

	_, err = run(t, "resources", "complete", id)
	require.NoError(t, err)
}

func TestResourcesSortByTitle(t *testing.T) {
	out, err := run(t, "resources", "list", "--sort", "title", "--json")
	require.NoError(t, err)

	var resources []models.Resource
	require.NoError(t, json.Unmarshal([]byte(out), &resources))
	require.NotEmpty(t, resources)

	for i := 1; i < len(resources); i++ {
		assert.LessOrEqual(t, resources[i-1].Title, resources[i].Title)
	}

	_, err = run(t, "resources", "list", "--sort", "date")
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestSettings(t *testing.T) {
	out, err := run(t, "settings", "--merge", `{"theme":"light"}`, "--json")
	require.NoError(t, err)

	var s models.Settings
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "light", s.Theme)

	_, err = run(t, "settings", "--theme", "neon")
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	out, err = run(t, "settings", "--default-minutes", "40", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 40, s.DefaultTimerMinutes)
	assert.Equal(t, "light", s.Theme)
}

func TestExportImport(t *testing.T) {
	file := filepath.Join(t.TempDir(), "backup.json")

	_, err := run(t, "export", "--output", file)
	require.NoError(t, err)

	b, err := os.ReadFile(file)
	require.NoError(t, err)

	var bundle models.Bundle
	require.NoError(t, json.Unmarshal(b, &bundle))
	assert.NotEmpty(t, bundle.ExportDate)

	_, err = run(t, "import", file)
	require.NoError(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))

	_, err = run(t, "import", bad)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestAssistantKeyAndAsk(t *testing.T) {
	_, err := run(t, "ask", "any", "tips?")
	require.NoError(t, err)

	out, err := run(t, "assistant", "history", "--json")
	require.NoError(t, err)

	var turns []models.Turn
	require.NoError(t, json.Unmarshal([]byte(out), &turns))
	require.GreaterOrEqual(t, len(turns), 2)
	assert.Equal(t, "any tips?", turns[len(turns)-2].Content)

	_, err = run(t, "assistant", "reset", "--yes")
	require.NoError(t, err)

	out, err = run(t, "assistant", "history", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &turns))
	assert.Len(t, turns, 1)
}

func TestReportAndDebug(t *testing.T) {
	out, err := run(t, "report", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "totalLogEntries")

	out, err = run(t, "debug")
	require.NoError(t, err)
	assert.Contains(t, out, config.Version)
}

func TestHelpText(t *testing.T) {
	var buf bytes.Buffer

	cli.HelpPrinterCustom(&buf, helpText(), Get(), nil)

	out := buf.String()

	for _, want := range []string{
		"KEY BINDINGS",
		"start/pause",
		"ctrl+a",
		"resources, res",
		"recommend",
		"edit-config",
		"COMPASS_ENV",
	} {
		assert.Contains(t, out, want)
	}

	for _, k := range tui.Bindings() {
		assert.Contains(t, out, k.Help().Desc)
	}
}

func TestSplitTopics(t *testing.T) {
	assert.Equal(t, []string{"go", "testing"}, splitTopics(" go, ,testing ,"))
	assert.Nil(t, splitTopics(""))
}
