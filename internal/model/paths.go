package model

import (
	"os"
	"path/filepath"
)

// HomeDir returns the actornet state directory (~/.actornet)
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".actornet"
	}
	return filepath.Join(home, ".actornet")
}

func defaultCacheDir() string {
	return filepath.Join(HomeDir(), "cache")
}
