package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".stylegen.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (STYLEGEN_* prefix)
	if err := k.Load(env.Provider("STYLEGEN_", ".", func(s string) string {
		// STYLEGEN_COMPILE_SOURCE -> compile.source
		// STYLEGEN_CHECK_STRICT -> check.strict
		// STYLEGEN_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "STYLEGEN_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// compileConfig holds the compile command's resolved settings.
type compileConfig struct {
	SourceDir      string
	OutputDir      string
	Includes       []string
	ThemeFile      string
	ThemeContext   string
	DefaultContext string
	RootSelector   string
	Verbose        bool
}

// buildCompileConfig constructs the compile settings from koanf state.
func buildCompileConfig() compileConfig {
	config := compileConfig{
		SourceDir:      getStringWithFallback("source", "compile.source", "styles"),
		OutputDir:      getStringWithFallback("output-dir", "compile.output-dir", "dist/css"),
		ThemeFile:      getStringWithFallback("theme", "compile.theme", ""),
		ThemeContext:   getStringWithFallback("theme-context", "compile.theme-context", "theme"),
		DefaultContext: getStringWithFallback("context", "compile.context", "default"),
		RootSelector:   getStringWithFallback("root-selector", "compile.root-selector", ":root"),
		Verbose:        getBoolWithFallback("verbose", "verbose", false),
	}

	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("compile.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = []string{"**/*.yaml", "**/*.yml"}
	}

	return config
}

// checkConfig holds the check command's resolved settings.
type checkConfig struct {
	Paths         []string
	OutputFormat  string
	PrintToolName bool
	UseColors     bool
}

// buildCheckConfig constructs the check settings from koanf state.
func buildCheckConfig() checkConfig {
	var paths []string
	if p := k.Strings("paths"); len(p) > 0 {
		paths = p
	} else if p := k.Strings("check.paths"); len(p) > 0 {
		paths = p
	} else {
		paths = []string{"dist/css/**/*.css"}
	}

	return checkConfig{
		Paths:         paths,
		OutputFormat:  getStringWithFallback("output-format", "check.output-format", "issues"),
		PrintToolName: getBoolWithFallback("print-tool-name", "check.print-tool-name", true),
		UseColors:     getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
