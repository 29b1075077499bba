// Package csscheck token-lexes CSS text and reports structural problems.
// It backs the `stylegen check` command, giving development-time feedback
// on generated stylesheets without ever failing a build on valid output.
package csscheck

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Issue is one problem found in a CSS source.
type Issue struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"`
	Text     string `json:"Text"`
	Severity string `json:"Severity"`
}

// Severity constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Result aggregates the issues of one check run.
type Result struct {
	FilesChecked int
	Issues       []Issue
}

// ErrorCount returns the number of error-severity issues.
func (r *Result) ErrorCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

// CheckFile reads and checks a single CSS file.
func CheckFile(path string) ([]Issue, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Check(string(content), path), nil
}

// Check lexes CSS content and returns issues. Valid CSS yields none.
func Check(content, filename string) []Issue {
	var issues []Issue

	lexer := css.NewLexer(parse.NewInputString(content))
	offset := 0
	braceDepth := 0
	var lastOpen int

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				line, col := position(content, offset)
				issues = append(issues, Issue{
					Filename: filename,
					Line:     line,
					Column:   col,
					Text:     fmt.Sprintf("lex error: %v", err),
					Severity: SeverityError,
				})
			}
			break
		}

		switch tt {
		case css.LeftBraceToken:
			braceDepth++
			lastOpen = offset
		case css.RightBraceToken:
			braceDepth--
			if braceDepth < 0 {
				line, col := position(content, offset)
				issues = append(issues, Issue{
					Filename: filename,
					Line:     line,
					Column:   col,
					Text:     "unexpected closing brace",
					Severity: SeverityError,
				})
				braceDepth = 0
			}
		case css.BadStringToken, css.BadURLToken:
			line, col := position(content, offset)
			issues = append(issues, Issue{
				Filename: filename,
				Line:     line,
				Column:   col,
				Text:     fmt.Sprintf("malformed token %q", string(text)),
				Severity: SeverityError,
			})
		}
		offset += len(text)
	}

	if braceDepth > 0 {
		line, col := position(content, lastOpen)
		issues = append(issues, Issue{
			Filename: filename,
			Line:     line,
			Column:   col,
			Text:     "unclosed rule block",
			Severity: SeverityError,
		})
	}

	return issues
}

// position converts a byte offset into 1-based line and column numbers.
func position(content string, offset int) (line, col int) {
	if offset > len(content) {
		offset = len(content)
	}
	before := content[:offset]
	line = strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		col = offset - i
	} else {
		col = offset + 1
	}
	return line, col
}
