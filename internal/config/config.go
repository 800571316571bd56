package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileName is the configuration file kept inside the repository's .git
// directory so it never ends up in a commit.
const FileName = "jr.toml"

// Config is the read-only configuration supplied to every command. It is
// threaded explicitly through constructors, never held in a global.
type Config struct {
	GitHub struct {
		BranchPrefix string `koanf:"branch_prefix"`
		Token        string `koanf:"token"`
		TrunkBranch  string `koanf:"trunk_branch"`
	} `koanf:"github"`
}

// Path returns the config file location for a repository.
func Path(gitRoot string) string {
	return filepath.Join(gitRoot, ".git", FileName)
}

// Load reads configuration for a repository: defaults, then the TOML file,
// then JR_* environment variables (e.g. JR_GITHUB_TOKEN).
func Load(gitRoot string) (*Config, error) {
	path := Path(gitRoot)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no configuration at %s: run 'jr init' first", path)
	}
	return load(path)
}

func load(path string) (*Config, error) {
	k := koanf.New(".")

	k.Load(confmap.Provider(map[string]interface{}{
		"github.branch_prefix": DefaultBranchPrefix(),
		"github.trunk_branch":  "main",
	}, "."), nil)

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("error loading config %s: %w", path, err)
	}

	// Only the first underscore separates section from key: the rest belong
	// to the key itself (JR_GITHUB_BRANCH_PREFIX -> github.branch_prefix).
	k.Load(env.Provider("JR_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "JR_")), "_", ".", 1)
	}), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads configuration for a repository, falling back to
// defaults when no file exists yet. Used by init, which must run before a
// config file is present.
func LoadOrDefault(gitRoot string) *Config {
	if cfg, err := Load(gitRoot); err == nil {
		return cfg
	}
	cfg := &Config{}
	cfg.GitHub.BranchPrefix = DefaultBranchPrefix()
	cfg.GitHub.TrunkBranch = "main"
	return cfg
}

// Save writes the configuration file for a repository.
func (c *Config) Save(gitRoot string) error {
	content := fmt.Sprintf(`# jr configuration

[github]
branch_prefix = %q
token = %q
trunk_branch = %q
`, c.GitHub.BranchPrefix, c.GitHub.Token, c.GitHub.TrunkBranch)

	path := Path(gitRoot)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// DefaultBranchPrefix derives the branch prefix from the current user.
func DefaultBranchPrefix() string {
	if user := os.Getenv("USER"); user != "" {
		return user + "/"
	}
	return "dev/"
}
