// Package config loads chromazone's settings.
//
// Settings are layered, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the style file location from pkg/paths
//  3. $XDG_CONFIG_HOME/chromazone/config.toml, if present
//  4. CHROMAZONE_* environment variables (CHROMAZONE_STYLE, CHROMAZONE_FILE,
//     CHROMAZONE_COLOR)
//
// Command-line flags are applied on top by the caller.
//
// Example config.toml:
//
//	style = "log"
//	color = "auto"
//	file  = "~/dotfiles/chromazone.styles"
package config
