package ux

import (
	"os"
	"path/filepath"
)

// DiscoverProjectRoot walks upward from the working directory looking
// for a .planwright directory, falling back to the first directory
// that carries a .git. Returns the working directory when neither is
// found.
func DiscoverProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	gitRoot := ""
	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ".planwright")); err == nil {
			return dir, nil
		}
		if gitRoot == "" {
			if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
				gitRoot = dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if gitRoot != "" {
		return gitRoot, nil
	}
	return cwd, nil
}
