package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Getwd finds the project root, the closest parent directory holding go.mod.
// go test runs from the package directory, so relative config paths need it.
func Getwd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	currDir := wd
	for {
		if fi, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil && !fi.IsDir() {
			return currDir, nil
		}
		newDir := filepath.Dir(currDir)
		if newDir == currDir {
			return wd, errors.New("project root not found")
		}
		currDir = newDir
	}
}

// ProjectPath resolves a relative path against the project root. Absolute
// paths are returned as is.
func ProjectPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	root, err := Getwd()
	if err != nil {
		return path
	}
	return filepath.Join(root, path)
}
