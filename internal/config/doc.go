// Package config loads Odin TV settings.
//
// Settings come from four layers, highest priority last:
//
//  1. built-in defaults
//  2. config.yaml in the configuration directory (or an explicit --config file)
//  3. ODINTV_* environment variables, with "." replaced by "_"
//     (ODINTV_REMOTE_PORT overrides remote.port)
//  4. command-line flags listed in FlagKeys
//
// The Gemini API key additionally falls back to GEMINI_API_KEY and API_KEY.
//
// # Configuration Directory
//
//   - Linux: $XDG_CONFIG_HOME/odintv or $HOME/.config/odintv
//   - macOS: $HOME/.config/odintv
//   - Windows: %LOCALAPPDATA%\odintv
//
// The same directory holds the default log file (odintv.log) and the user
// speed-dial catalog (sites.yaml).
package config
