package document

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			// No .gitignore is fine
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// Scan finds all descriptor files under sourceDir matching the include
// patterns. Patterns support ** globs; duplicates across patterns are
// removed while keeping first-match order, and gitignored files are
// skipped.
func Scan(sourceDir string, includes []string) ([]string, error) {
	var files []string

	for _, pattern := range includes {
		fullPattern := filepath.Join(sourceDir, pattern)

		matches, err := doublestar.FilepathGlob(fullPattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		files = append(files, matches...)
	}

	seen := make(map[string]bool)
	unique := make([]string, 0, len(files))
	for _, f := range files {
		if !seen[f] {
			seen[f] = true
			unique = append(unique, f)
		}
	}

	return filterIgnored(unique, loadGitIgnore()), nil
}

// filterIgnored drops files matched by the project's .gitignore. Only
// relative paths are checked: absolute matches (tmp dirs, user-supplied
// roots) sit outside the project and its ignore rules.
func filterIgnored(files []string, gi *ignore.GitIgnore) []string {
	if gi == nil {
		return files
	}
	kept := files[:0]
	for _, f := range files {
		if !filepath.IsAbs(f) && gi.MatchesPath(f) {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}
