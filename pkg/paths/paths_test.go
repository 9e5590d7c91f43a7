package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		envSetup map[string]string
		validate func(t *testing.T, p Paths)
	}{
		{
			name: "explicit root",
			root: "/tmp/project",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/tmp/project", p.Root())
				assert.Equal(t, "/tmp/project/.sweep.toml", p.ProjectConfigPath())
			},
		},
		{
			name: "empty root uses working directory",
			validate: func(t *testing.T, p Paths) {
				wd, err := os.Getwd()
				require.NoError(t, err)
				assert.Equal(t, wd, p.Root())
			},
		},
		{
			name: "expand tilde in root",
			root: "~/code",
			validate: func(t *testing.T, p Paths) {
				homeDir, _ := os.UserHomeDir()
				assert.Equal(t, filepath.Join(homeDir, "code"), p.Root())
			},
		},
		{
			name: "custom directories",
			root: "/tmp/project",
			envSetup: map[string]string{
				EnvSweepConfigDir: "/custom/config",
				EnvSweepStateDir:  "/custom/state",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/custom/config/config.toml", p.UserConfigPath())
				assert.Equal(t, "/custom/state/sweep.log", p.LogFilePath())
			},
		},
		{
			name: "XDG_STATE_HOME",
			root: "/tmp/project",
			envSetup: map[string]string{
				EnvXDGStateHome: "/xdg/state",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/xdg/state/sweep", p.StateDir())
				assert.Equal(t, "/xdg/state/sweep/sweep.log", p.LogFilePath())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvSweepConfigDir, "")
			t.Setenv(EnvSweepStateDir, "")
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}

			p, err := New(tt.root)
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestExpandHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ExpandHome(""))
	assert.Equal(t, homeDir, ExpandHome("~"))
	assert.Equal(t, filepath.Join(homeDir, "a/b"), ExpandHome("~/a/b"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "~other", ExpandHome("~other"))
}
