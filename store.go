package stylegen

import (
	"strings"
	"sync"
)

// ContextCSS is one flushed bucket: the context name and its fragments
// joined with newlines.
type ContextCSS struct {
	Context string
	CSS     string
}

// Store buffers compiled CSS fragments per named context until flush time.
// It is an explicit object rather than package state, so each request or
// render pass owns its own instance; a mutex additionally makes a shared
// instance safe.
//
// Fragments inserted into a context are kept in insertion order and are
// neither lost nor duplicated until that context is flushed. Flushing is
// all-or-nothing per context and leaves other contexts untouched.
type Store struct {
	mu      sync.Mutex
	order   []string
	buckets map[string][]string
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{buckets: make(map[string][]string)}
}

// Insert appends cssText to the context's fragment sequence, creating the
// bucket on first use. Empty text is a no-op.
func (s *Store) Insert(context, cssText string) {
	if cssText == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buckets[context]; !ok {
		s.order = append(s.order, context)
	}
	s.buckets[context] = append(s.buckets[context], cssText)
}

// Flush returns the context's fragments joined with newlines and clears the
// bucket. An unknown or empty context returns "".
func (s *Store) Flush(context string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	fragments := s.buckets[context]
	if fragments == nil {
		return ""
	}
	delete(s.buckets, context)
	for i, c := range s.order {
		if c == context {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return strings.Join(fragments, "\n")
}

// FlushAll flushes every non-empty context in first-insert order and clears
// the whole store.
func (s *Store) FlushAll() []ContextCSS {
	s.mu.Lock()
	defer s.mu.Unlock()

	contexts := s.order
	s.order = nil

	var out []ContextCSS
	for _, context := range contexts {
		fragments := s.buckets[context]
		delete(s.buckets, context)
		if len(fragments) == 0 {
			continue
		}
		out = append(out, ContextCSS{
			Context: context,
			CSS:     strings.Join(fragments, "\n"),
		})
	}
	return out
}
