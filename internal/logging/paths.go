package logging

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultLogDir returns the default log directory, placed next to the
// template caches: %APPDATA%\gitignore-gen\logs on Windows,
// ~/.cache/gitignore-gen/logs elsewhere. Falls back to the temp
// directory if the home directory is unavailable.
func DefaultLogDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gitignore-gen", "logs")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "gitignore-gen", "logs")
	}
	return filepath.Join(home, ".cache", "gitignore-gen", "logs")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(DefaultLogDir(), "gitignore-gen.log")
}
