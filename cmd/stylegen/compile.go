package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yacobolo/stylegen"
	"github.com/yacobolo/stylegen/internal/document"
	"github.com/yacobolo/stylegen/internal/theme"
)

var compileCmd = &cobra.Command{
	Use:     "compile",
	Aliases: []string{"build"},
	Short:   "Compile style descriptor files into CSS",
	Long: `Scan descriptor YAML files, compile every rule, and write one CSS file
per context into the output directory. A theme file adds the preset
custom-property stylesheet to its own context.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCompile,
}

func init() {
	f := compileCmd.Flags()
	f.String("source", "styles", "Source directory for descriptor files")
	f.String("output-dir", "dist/css", "Output directory for generated CSS")
	f.StringSlice("include", nil, "Glob patterns for descriptor files to include")
	f.String("theme", "", "Theme file with preset definitions")
	f.String("theme-context", "theme", "Context receiving the preset stylesheet")
	f.String("context", "default", "Context for rules that name none")
	f.String("root-selector", ":root", "Selector for rules that name none")
}

func runCompile(_ *cobra.Command, _ []string) error {
	config := buildCompileConfig()
	quiet := getBoolWithFallback("quiet", "quiet", false)

	compiler := stylegen.NewCompiler(
		stylegen.WithLogger(newLogger(config.Verbose)),
		stylegen.WithRootSelector(config.RootSelector),
	)
	store := stylegen.NewStore()

	if config.ThemeFile != "" {
		th, err := theme.Load(config.ThemeFile)
		if err != nil {
			return fmt.Errorf("theme failed: %w", err)
		}
		store.Insert(config.ThemeContext, th.Stylesheet(config.RootSelector))
	}

	files, err := document.Scan(config.SourceDir, config.Includes)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	rulesCompiled := 0
	for _, path := range files {
		doc, err := document.Load(path)
		if err != nil {
			return fmt.Errorf("load failed: %w", err)
		}
		for _, entry := range doc.Entries {
			context := entry.Context
			if context == "" {
				context = config.DefaultContext
			}
			if entry.Styles != nil {
				compiler.Generate(entry.Styles, stylegen.Options{
					Selector: entry.Selector,
					Context:  context,
					Enqueue:  true,
				}, store)
			}
			if len(entry.Declarations) > 0 {
				records := compiler.CompileRules([]stylegen.Rule{{
					Selector:     entry.Selector,
					Declarations: entry.Declarations,
				}})
				store.Insert(context, stylegen.Serialize(records))
			}
			rulesCompiled++
		}
	}

	buckets := store.FlushAll()
	if err := writeBuckets(config.OutputDir, buckets); err != nil {
		return err
	}

	if !quiet {
		fmt.Printf("Compiled %d rule(s) from %d file(s)\n", rulesCompiled, len(files))
		for _, bucket := range buckets {
			fmt.Printf("  %s.css: %d byte(s)\n", bucket.Context, len(bucket.CSS))
		}
	}

	return nil
}

// writeBuckets writes one <context>.css per flushed bucket. An output dir
// of "-" streams everything to stdout instead.
func writeBuckets(outputDir string, buckets []stylegen.ContextCSS) error {
	if outputDir == "-" {
		for _, bucket := range buckets {
			fmt.Printf("/* %s */\n%s\n", bucket.Context, bucket.CSS)
		}
		return nil
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	for _, bucket := range buckets {
		path := filepath.Join(outputDir, bucket.Context+".css")
		if err := os.WriteFile(path, []byte(bucket.CSS+"\n"), 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

// newLogger builds the diagnostics logger. Without --verbose all engine
// diagnostics are dropped.
func newLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	console := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})
	return zerolog.New(console).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
