package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylegen.yaml")
	configContent := `
verbose: true

compile:
  source: custom/styles
  output-dir: custom/out
  theme: custom/theme.yaml
  context: block-supports
  root-selector: "body"

check:
  output-format: json
  paths:
    - "custom/**/*.css"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "custom/styles", k.String("compile.source"))
	assert.Equal(t, "custom/out", k.String("compile.output-dir"))
	assert.Equal(t, "custom/theme.yaml", k.String("compile.theme"))
	assert.Equal(t, "json", k.String("check.output-format"))

	config := buildCompileConfig()
	assert.Equal(t, "custom/styles", config.SourceDir)
	assert.Equal(t, "block-supports", config.DefaultContext)
	assert.Equal(t, "body", config.RootSelector)
	assert.True(t, config.Verbose)

	check := buildCheckConfig()
	assert.Equal(t, []string{"custom/**/*.css"}, check.Paths)
	assert.Equal(t, "json", check.OutputFormat)
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.stylegen.yaml"))

	config := buildCompileConfig()
	assert.Equal(t, "styles", config.SourceDir)
	assert.Equal(t, "dist/css", config.OutputDir)
	assert.Equal(t, []string{"**/*.yaml", "**/*.yml"}, config.Includes)
	assert.Equal(t, "default", config.DefaultContext)
	assert.Equal(t, "theme", config.ThemeContext)
	assert.Equal(t, ":root", config.RootSelector)

	check := buildCheckConfig()
	assert.Equal(t, []string{"dist/css/**/*.css"}, check.Paths)
	assert.Equal(t, "issues", check.OutputFormat)
	assert.True(t, check.PrintToolName)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylegen.yaml")
	configContent := `
compile:
  source: from-file
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	t.Setenv("STYLEGEN_COMPILE_SOURCE", "from-env")
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env", k.String("compile.source"))
}
