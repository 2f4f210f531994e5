package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for chromazone
	EnvConfigDir = "CHROMAZONE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for chromazone
	EnvStateDir = "CHROMAZONE_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for chromazone-specific files
	AppDirName = "chromazone"

	// StyleFileName is the name of the style file
	StyleFileName = "chromazone.styles"

	// SettingsFileName is the name of the settings file
	SettingsFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "chromazone.log"
)

// Paths holds the resolved locations. Use New to build one.
type Paths struct {
	configDir string
	stateDir  string
}

// New resolves all locations from the current environment.
func New() *Paths {
	// adrg/xdg caches the environment at init; pick up later changes.
	xdg.Reload()

	p := &Paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

// ConfigDir returns the chromazone config directory.
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the chromazone state directory.
func (p *Paths) StateDir() string {
	return p.stateDir
}

// StyleFilePath returns the default style file location.
func (p *Paths) StyleFilePath() string {
	return filepath.Join(p.configDir, StyleFileName)
}

// SettingsFilePath returns the settings file location.
func (p *Paths) SettingsFilePath() string {
	return filepath.Join(p.configDir, SettingsFileName)
}

// LogFilePath returns the log file location.
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
