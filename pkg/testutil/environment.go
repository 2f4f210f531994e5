package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/chromazone/pkg/paths"
)

// settingsEnv lists the variables that change chromazone's behaviour and
// must not leak in from the developer's shell.
var settingsEnv = []string{
	"CHROMAZONE_STYLE",
	"CHROMAZONE_FILE",
	"CHROMAZONE_COLOR",
	"NO_COLOR",
}

// TestEnvironment is an isolated set of chromazone locations
type TestEnvironment struct {
	ConfigDir string
	StateDir  string

	t *testing.T
}

// NewTestEnvironment creates temporary config and state directories and
// points chromazone at them for the duration of the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
		t:         t,
	}

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	for _, key := range settingsEnv {
		Unsetenv(t, key)
	}

	return env
}

// Paths resolves locations inside the environment.
func (e *TestEnvironment) Paths() *paths.Paths {
	return paths.New()
}

// WriteStyleFile writes the default style file and returns its path.
func (e *TestEnvironment) WriteStyleFile(content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.ConfigDir, paths.StyleFileName, content)
}

// WriteSettings writes the settings file and returns its path.
func (e *TestEnvironment) WriteSettings(content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.ConfigDir, paths.SettingsFileName, content)
}
