package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relicense.yaml")
	content := `
root: src
extensions:
  - .ts
  - .tsx
exclude_dirs:
  - node_modules
ignore_patterns:
  - "**/*.test.ts"
preset: mit-to-agpl
dry_run: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "src", cfg.Root)
	assert.Equal(t, []string{".ts", ".tsx"}, cfg.Extensions)
	assert.Equal(t, []string{"node_modules"}, cfg.ExcludeDirs)
	assert.Equal(t, []string{"**/*.test.ts"}, cfg.IgnorePatterns)
	assert.Equal(t, "mit-to-agpl", cfg.Preset)
	assert.True(t, cfg.DryRun)
	assert.Nil(t, cfg.Headers)
}

func TestLoad_YAML_CustomHeaders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relicense.yaml")
	content := `
headers:
  old_exact: "/* old */"
  match_generic: true
  replacement: "/* new */"
  markers:
    - "'use client'"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Headers)

	assert.Equal(t, "/* old */", cfg.Headers.OldExact)
	assert.True(t, cfg.Headers.MatchGeneric)
	assert.Equal(t, "/* new */", cfg.Headers.Replacement)
	assert.Equal(t, []string{"'use client'"}, cfg.Headers.Markers)

	// Defaults still fill the rest
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, []string{".ts", ".tsx", ".js", ".jsx"}, cfg.Extensions)
}

func TestLoad_YAML_UnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relicense.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nonsense: true\n"), 0644))

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_HCL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relicense.hcl")
	content := `
root = "web"
preset = "agpl-to-mit"

headers {
  old_pattern = "(?s)/\\*.*?ACME.*?\\*/\\s*\n"
  replacement = "/* new */"
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "web", cfg.Root)
	require.NotNil(t, cfg.Headers)
	assert.Equal(t, "/* new */", cfg.Headers.Replacement)
	assert.NotEmpty(t, cfg.Headers.OldPattern)
}

func TestLoad_MissingDefaultPath(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := Load(context.Background(), DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_NoParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relicense.toml")
	require.NoError(t, os.WriteFile(path, []byte("root = \".\"\n"), 0644))

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser found")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError string
	}{
		{
			name:   "defaults_are_valid",
			mutate: func(c *Config) {},
		},
		{
			name:      "missing_root",
			mutate:    func(c *Config) { c.Root = "" },
			wantError: "root is required",
		},
		{
			name:      "missing_extensions",
			mutate:    func(c *Config) { c.Extensions = nil },
			wantError: "at least one extension is required",
		},
		{
			name: "missing_preset_and_headers",
			mutate: func(c *Config) {
				c.Preset = ""
				c.Headers = nil
			},
			wantError: "either a preset or a headers block is required",
		},
		{
			name: "headers_without_replacement",
			mutate: func(c *Config) {
				c.Headers = &HeaderArgs{OldExact: "/* old */"}
			},
			wantError: "headers.replacement is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_Policy(t *testing.T) {
	t.Run("preset", func(t *testing.T) {
		policy, err := Default().Policy()
		require.NoError(t, err)
		assert.Equal(t, "agpl-to-mit", policy.Name)
	})

	t.Run("custom_headers", func(t *testing.T) {
		cfg := Default()
		cfg.Headers = &HeaderArgs{
			OldExact:    "/* old */",
			OldPattern:  `(?s)/\*.*?\*/\s*\n`,
			Replacement: "/* new */",
		}

		policy, err := cfg.Policy()
		require.NoError(t, err)
		assert.Equal(t, "custom", policy.Name)
		assert.Equal(t, "/* old */", policy.OldExact)
		require.NotNil(t, policy.OldPattern)
	})

	t.Run("bad_pattern", func(t *testing.T) {
		cfg := Default()
		cfg.Headers = &HeaderArgs{
			OldPattern:  "[unclosed",
			Replacement: "/* new */",
		}

		_, err := cfg.Policy()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "compiling old_pattern")
	})

	t.Run("unknown_preset", func(t *testing.T) {
		cfg := Default()
		cfg.Preset = "gpl-to-bsd"

		_, err := cfg.Policy()
		require.Error(t, err)
	})
}
