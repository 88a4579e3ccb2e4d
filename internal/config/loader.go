package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ProjectConfigFile is the name of the project-level config file.
const ProjectConfigFile = "header-generator.yaml"

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger   *slog.Logger
	startDir string
}

// NewLoader creates a loader that searches for the project file from startDir
// upwards. An empty startDir means the current directory.
func NewLoader(logger *slog.Logger, startDir string) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, startDir: startDir}
}

// Load resolves configuration with precedence:
// 1. overrides (command-line flags)
// 2. project config (explicit path, or header-generator.yaml in startDir or a parent)
// 3. defaults
func (l *Loader) Load(explicitPath string, overrides Settings) (*Config, error) {
	var project Settings

	path := explicitPath
	if path == "" {
		path = l.findProjectConfig()
	}

	switch {
	case path == "":
		l.logger.Debug("No project config found")
	default:
		s, err := LoadFromFile(path)
		if err != nil {
			if explicitPath == "" && os.IsNotExist(err) {
				break
			}
			return nil, fmt.Errorf("load config: %w", err)
		}
		l.logger.Debug("Loaded project config", slog.String("path", path))
		project = s
	}

	return Resolve(overrides, project, Defaults())
}

// findProjectConfig searches for the project file in startDir and its parents.
func (l *Loader) findProjectConfig() string {
	dir := l.startDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = cwd
	}

	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
