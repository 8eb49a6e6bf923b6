package config

import (
	"os"
	"path/filepath"
)

// ProjectFile is the name of a per-project config file.
const ProjectFile = ".coffman.yaml"

// Discover looks for a project config file in start and its parents,
// stopping after the first directory that contains .git. It returns the
// path and true when one is found.
func Discover(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, ProjectFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		// Stop at git root
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
