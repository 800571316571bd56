package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	gitRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(gitRoot, ".git"), 0o755))
	require.NoError(t, os.WriteFile(Path(gitRoot), []byte(content), 0o600))
	return gitRoot
}

func TestLoad(t *testing.T) {
	gitRoot := writeConfig(t, `
[github]
branch_prefix = "alice/"
token = "tok123"
trunk_branch = "master"
`)

	cfg, err := Load(gitRoot)
	require.NoError(t, err)
	assert.Equal(t, "alice/", cfg.GitHub.BranchPrefix)
	assert.Equal(t, "tok123", cfg.GitHub.Token)
	assert.Equal(t, "master", cfg.GitHub.TrunkBranch)
}

func TestLoad_Defaults(t *testing.T) {
	gitRoot := writeConfig(t, `
[github]
token = "tok123"
`)

	cfg, err := Load(gitRoot)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.GitHub.BranchPrefix)
	assert.Equal(t, "main", cfg.GitHub.TrunkBranch)
}

func TestLoad_EnvOverridesToken(t *testing.T) {
	gitRoot := writeConfig(t, `
[github]
token = "from-file"
`)
	t.Setenv("JR_GITHUB_TOKEN", "from-env")

	cfg, err := Load(gitRoot)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.GitHub.Token)
}

func TestLoad_EnvOverridesMultiWordKey(t *testing.T) {
	gitRoot := writeConfig(t, `
[github]
branch_prefix = "from-file/"
token = "tok123"
`)
	t.Setenv("JR_GITHUB_BRANCH_PREFIX", "from-env/")
	t.Setenv("JR_GITHUB_TRUNK_BRANCH", "master")

	cfg, err := Load(gitRoot)
	require.NoError(t, err)
	assert.Equal(t, "from-env/", cfg.GitHub.BranchPrefix)
	assert.Equal(t, "master", cfg.GitHub.TrunkBranch)
}

func TestLoad_MissingFile(t *testing.T) {
	gitRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(gitRoot, ".git"), 0o755))

	_, err := Load(gitRoot)
	assert.ErrorContains(t, err, "jr init")
}

func TestSaveRoundTrip(t *testing.T) {
	gitRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(gitRoot, ".git"), 0o755))

	var cfg Config
	cfg.GitHub.BranchPrefix = "bob/"
	cfg.GitHub.Token = "tok456"
	cfg.GitHub.TrunkBranch = "main"
	require.NoError(t, cfg.Save(gitRoot))

	loaded, err := Load(gitRoot)
	require.NoError(t, err)
	assert.Equal(t, &cfg, loaded)
}
