package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/stylegen/internal/csscheck"
	"github.com/yacobolo/stylegen/internal/document"
	"github.com/yacobolo/stylegen/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check generated CSS files for structural problems",
	Long: `Token-lex CSS files and report malformed tokens and unbalanced rule
blocks. Intended as a development-time safety net over generated output.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns for CSS files to check")
	f.String("output-format", "issues", "Output format: issues|json")
	f.Bool("print-tool-name", true, "Show (csscheck) suffix on issues")
}

func runCheck(_ *cobra.Command, _ []string) error {
	config := buildCheckConfig()
	quiet := getBoolWithFallback("quiet", "quiet", false)

	files, err := document.Scan(".", config.Paths)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	result := csscheck.Result{FilesChecked: len(files)}
	for _, path := range files {
		issues, err := csscheck.CheckFile(path)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		result.Issues = append(result.Issues, issues...)
	}

	if !quiet {
		switch config.OutputFormat {
		case "json":
			if err := report.WriteJSON(os.Stdout, result); err != nil {
				return fmt.Errorf("writing json: %w", err)
			}
		default:
			r := report.NewReporter(os.Stdout, report.Config{
				UseColors:     config.UseColors,
				PrintToolName: config.PrintToolName,
			})
			r.PrintIssues(result.Issues)
			r.PrintSummary(result)
		}
	}

	if result.ErrorCount() > 0 {
		return fmt.Errorf("%d error(s) found", result.ErrorCount())
	}
	return nil
}
