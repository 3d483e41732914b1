// Package config provides the casebook configuration directory and the
// optional config file read from it.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the casebook configuration directory.
//
// Resolution:
//   - $CASEBOOK_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/casebook if set (respects XDG on any platform)
//   - %AppData%/casebook on Windows
//   - ~/.config/casebook on macOS and Linux
func Dir() string {
	if dir := os.Getenv("CASEBOOK_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "casebook")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "casebook")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "casebook")
}
