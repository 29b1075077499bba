// Package report renders check results for terminals and tooling.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/yacobolo/stylegen/internal/csscheck"
)

// Config controls reporter behavior.
type Config struct {
	UseColors     bool
	PrintToolName bool
}

// Reporter formats check issues in golangci-lint style.
type Reporter struct {
	w             io.Writer
	useColors     bool
	printToolName bool
}

// NewReporter creates a reporter over w.
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:             w,
		useColors:     colorsEnabled(config),
		printToolName: config.PrintToolName,
	}
}

// colorsEnabled decides whether output gets painted: an explicit opt-in
// wins, then color-capable CI environments, then a tty on stdout.
func colorsEnabled(config Config) bool {
	switch {
	case config.UseColors:
		return true
	case os.Getenv("FORCE_COLOR") != "":
		return true
	case os.Getenv("GITHUB_ACTIONS") == "true":
		return true
	}
	info, err := os.Stdout.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// PrintIssues outputs issues sorted by file, line, then column.
func (r *Reporter) PrintIssues(issues []csscheck.Issue) {
	sorted := make([]csscheck.Issue, len(issues))
	copy(sorted, issues)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Filename != sorted[j].Filename {
			return sorted[i].Filename < sorted[j].Filename
		}
		if sorted[i].Line != sorted[j].Line {
			return sorted[i].Line < sorted[j].Line
		}
		return sorted[i].Column < sorted[j].Column
	})

	for _, issue := range sorted {
		location := fmt.Sprintf("%s:%d:%d:", issue.Filename, issue.Line, issue.Column)
		suffix := ""
		if r.printToolName {
			suffix = " (csscheck)"
		}
		fmt.Fprintf(r.w, "%s %s%s\n",
			r.paint(styleLocation, location),
			issue.Text,
			r.paint(styleMuted, suffix))
	}
}

// PrintSummary outputs a closing line with counts.
func (r *Reporter) PrintSummary(result csscheck.Result) {
	if len(result.Issues) == 0 {
		fmt.Fprintf(r.w, "%s %d file(s) checked, no issues\n",
			r.paint(stylePass, "ok:"), result.FilesChecked)
		return
	}
	fmt.Fprintf(r.w, "%s %d issue(s) in %d file(s)\n",
		r.paint(styleFail, "fail:"),
		len(result.Issues), result.FilesChecked)
}

// WriteJSON exports the result as indented JSON for tooling integration.
func WriteJSON(w io.Writer, result csscheck.Result) error {
	payload := struct {
		FilesChecked int              `json:"FilesChecked"`
		Issues       []csscheck.Issue `json:"Issues"`
	}{
		FilesChecked: result.FilesChecked,
		Issues:       result.Issues,
	}
	if payload.Issues == nil {
		payload.Issues = []csscheck.Issue{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
