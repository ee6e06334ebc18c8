package common

import (
	"errors"
	"os"
	"path/filepath"
)

const appName = "tunes"

func CacheDir() string {
	return filepath.Join(cacheHome(), appName)
}

// https://specifications.freedesktop.org/basedir/latest/#variables
func cacheHome() string {
	dir := os.Getenv("XDG_CACHE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".cache")
	}
	return dir
}

// MusicDir resolves the user's audio library directory.
// $XDG_MUSIC_DIR wins, otherwise ~/Music. The directory must exist.
func MusicDir() (string, error) {
	dir := os.Getenv("XDG_MUSIC_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, "Music")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", errors.New(dir + " is not a directory")
	}
	return dir, nil
}
