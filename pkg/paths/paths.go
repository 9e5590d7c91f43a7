package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/sweep/pkg/errors"
)

// Environment variables
const (
	EnvSweepConfigDir = "SWEEP_CONFIG_DIR"
	EnvSweepStateDir  = "SWEEP_STATE_DIR"
	EnvXDGStateHome   = "XDG_STATE_HOME"
	EnvHome           = "HOME"
)

// File and directory names
const (
	SweepDirName = "sweep"

	UserConfigFile = "config.toml"

	ProjectConfigFile = ".sweep.toml"

	LogFileName = "sweep.log"
)

// Paths resolves the locations sweep uses around a scan root.
type Paths interface {
	Root() string
	ConfigDir() string
	StateDir() string
	UserConfigPath() string
	ProjectConfigPath() string
	LogFilePath() string
}

type paths struct {
	root      string
	xdgConfig string
	xdgState  string
}

// New creates a Paths rooted at the given scan root. An empty root means
// the current directory. The root is expanded and made absolute.
func New(root string) (Paths, error) {
	if root == "" {
		root = "."
	}

	absRoot, err := filepath.Abs(ExpandHome(root))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", root)
	}

	p := &paths{root: absRoot}
	p.setupXDGDirs()
	return p, nil
}

func (p *paths) setupXDGDirs() {
	if configDir := os.Getenv(EnvSweepConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, SweepDirName)
	}

	switch {
	case os.Getenv(EnvSweepStateDir) != "":
		p.xdgState = ExpandHome(os.Getenv(EnvSweepStateDir))
	case os.Getenv(EnvXDGStateHome) != "":
		p.xdgState = filepath.Join(os.Getenv(EnvXDGStateHome), SweepDirName)
	default:
		p.xdgState = filepath.Join(xdg.StateHome, SweepDirName)
	}
}

func (p *paths) Root() string { return p.root }

func (p *paths) ConfigDir() string { return p.xdgConfig }

func (p *paths) StateDir() string { return p.xdgState }

// UserConfigPath returns the per-user config file location
func (p *paths) UserConfigPath() string {
	return filepath.Join(p.xdgConfig, UserConfigFile)
}

// ProjectConfigPath returns the config file location inside the scan root
func (p *paths) ProjectConfigPath() string {
	return filepath.Join(p.root, ProjectConfigFile)
}

// LogFilePath returns the log file location
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if path == "~" {
		return homeDir
	}
	if len(path) > 1 && path[1] == '/' {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
