// Package config resolves report settings for vsut entry points.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. Environment variables (VSUT_FORMAT, VSUT_THEME, VSUT_NO_COLOR, NO_COLOR, VSUT_DEBUG)
//  2. YAML config file (.vsut.yaml in the working directory, else
//     $XDG_CONFIG_HOME/vsut/.vsut.yaml)
//  3. Hardcoded defaults
//
// # Formats
//
//   - auto: terminal when stdout is a TTY and colors are enabled, table otherwise
//   - table: byte-stable plain text
//   - terminal: styled table
//   - json: structured output for automation
//   - none: no report
package config
