package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Selection remembers which local profile the CLI operates on.
type Selection struct {
	ProfileID string `toml:"profile_id"`
}

// ConfigDir is overridable for tests.
var ConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ironlog"), nil
}

func getSelectionPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "current_profile.toml"), nil
}

func SaveSelection(sel *Selection) error {
	path, err := getSelectionPath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(sel)
}

// LoadSelection returns an empty selection when none was saved yet.
func LoadSelection() (*Selection, error) {
	path, err := getSelectionPath()
	if err != nil {
		return nil, err
	}

	var sel Selection
	if _, err := toml.DecodeFile(path, &sel); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &sel, nil
		}
		return nil, err
	}

	return &sel, nil
}

func ClearSelection() error {
	path, err := getSelectionPath()
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
