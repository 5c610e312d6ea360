package perflang

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestApplyDefaults(t *testing.T) {
	c := &Config{}
	c.applyDefaults()
	assert.Equal(t, Config{Mode: ModeTokens, Format: "text", Prompt: "> "}, *c)

	c = &Config{Mode: ModeAST, Format: "yaml", Prompt: "perf> "}
	c.applyDefaults()
	assert.Equal(t, ModeAST, c.Mode)
	assert.Equal(t, "yaml", c.Format)
	assert.Equal(t, "perf> ", c.Prompt)
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, Config{Mode: ModeTokens, Format: "text", Prompt: "> "}, *c)
	require.NoError(t, c.Validate())

	// Each call returns a fresh value.
	c.Prompt = "$ "
	assert.Equal(t, "> ", DefaultConfig().Prompt)
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "perf.toml", `
mode = "ast"
format = "table"
color = true
stop_on_error = true
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ModeAST, cfg.Mode)
	assert.Equal(t, "table", cfg.Format)
	assert.True(t, cfg.Color)
	assert.True(t, cfg.StopOnError)
	assert.Equal(t, "> ", cfg.Prompt)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "perf.yml", "filter: KEYWORD\nverbose: true\nprompt: \"$ \"\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "KEYWORD", cfg.Filter)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "$ ", cfg.Prompt)
	assert.Equal(t, ModeTokens, cfg.Mode)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	_, err = LoadConfig(writeFile(t, "bad.toml", "mode = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse toml config")

	_, err = LoadConfig(writeFile(t, "bad.yaml", "mode: [1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml config")

	_, err = ParseConfig(nil, "ini")
	assert.EqualError(t, err, `unknown config format "ini"`)
}

func TestValidateCollectsErrors(t *testing.T) {
	c := &Config{Mode: "run", Format: "xml", Filter: "(("}
	err := c.Validate()
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 3)

	assert.NoError(t, (&Config{}).Validate())
}

func TestConfigFormat(t *testing.T) {
	assert.Equal(t, "yaml", configFormat("a.YAML"))
	assert.Equal(t, "yaml", configFormat("a.yml"))
	assert.Equal(t, "toml", configFormat("a.toml"))
	assert.Equal(t, "toml", configFormat("perfrc"))
}
