// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the dashboard's panels and scores as tools over stdio.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/canopy-esg/canopy/internal/config"
)

// ProjectDir holds the resolved directory a tool call runs against.
type ProjectDir struct {
	// AbsPath is the absolute, symlink-resolved path.
	AbsPath string
	// ConfigDir is the nearest ancestor holding a .canopy.yaml, or AbsPath
	// when there is none.
	ConfigDir string
}

// ResolvePath resolves a project path to an absolute directory and finds
// the directory whose .canopy.yaml applies to it. It returns an error if
// the path does not exist or is not a directory.
func ResolvePath(path string) (*ProjectDir, error) {
	if path == "" {
		path = "."
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("path %q does not exist", path)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", path)
	}

	configDir := absPath
	for {
		if _, err := os.Stat(filepath.Join(configDir, config.FileName)); err == nil {
			break
		}
		parent := filepath.Dir(configDir)
		if parent == configDir {
			configDir = absPath
			break
		}
		configDir = parent
	}

	return &ProjectDir{
		AbsPath:   absPath,
		ConfigDir: configDir,
	}, nil
}
