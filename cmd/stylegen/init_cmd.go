package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .stylegen.yaml config file",
	Long:  `Create a .stylegen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".stylegen.yaml"); err == nil && !force {
			return fmt.Errorf(".stylegen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".stylegen.yaml", []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .stylegen.yaml")
		return nil
	},
}

const defaultConfig = `# stylegen configuration
# Docs: https://github.com/yacobolo/stylegen

# Shared settings
verbose: false

# Compile settings
compile:
  source: styles
  output-dir: dist/css
  include:
    - "**/*.yaml"
    - "**/*.yml"
  theme: ""                # optional theme file with preset definitions
  theme-context: theme
  context: default         # context for rules that name none
  root-selector: ":root"

# Check settings
check:
  paths:
    - "dist/css/**/*.css"
  output-format: issues    # issues | json
  print-tool-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
