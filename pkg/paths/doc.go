// Package paths provides the filesystem locations chromazone reads from and
// writes to.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/chromazone (style file, settings file)
//   - State:  $XDG_STATE_HOME/chromazone (log file)
//
// # Environment Variables
//
//   - CHROMAZONE_CONFIG_DIR: Override the config directory
//   - CHROMAZONE_STATE_DIR: Override the state directory
//
// A leading "~/" in an override is expanded to the user's home directory.
package paths
