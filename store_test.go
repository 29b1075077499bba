package stylegen

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInsertAndFlush(t *testing.T) {
	s := NewStore()
	s.Insert("ctx1", ".a{color:red;}")
	s.Insert("ctx1", ".b{color:blue;}")
	s.Insert("ctx2", ".c{margin:0;}")

	assert.Equal(t, ".a{color:red;}\n.b{color:blue;}", s.Flush("ctx1"))
	// Flushed context holds nothing; the other is untouched.
	assert.Equal(t, "", s.Flush("ctx1"))
	assert.Equal(t, ".c{margin:0;}", s.Flush("ctx2"))
}

func TestStoreFlushAll(t *testing.T) {
	s := NewStore()
	s.Insert("b", "two")
	s.Insert("a", "one")
	s.Insert("b", "three")

	got := s.FlushAll()
	// First-insert order of contexts, fragments newline-joined.
	require.Equal(t, []ContextCSS{
		{Context: "b", CSS: "two\nthree"},
		{Context: "a", CSS: "one"},
	}, got)

	assert.Empty(t, s.FlushAll())
}

func TestStoreFlushExhaustiveness(t *testing.T) {
	s := NewStore()
	inserted := make(map[string][]string)
	for i := 0; i < 20; i++ {
		ctx := fmt.Sprintf("ctx%d", i%3)
		frag := fmt.Sprintf(".r%d{top:%dpx;}", i, i)
		s.Insert(ctx, frag)
		inserted[ctx] = append(inserted[ctx], frag)
	}

	flushed := s.FlushAll()
	require.Len(t, flushed, len(inserted))
	for _, bucket := range flushed {
		assert.Equal(t, strings.Join(inserted[bucket.Context], "\n"), bucket.CSS)
	}
	assert.Empty(t, s.FlushAll())
}

func TestStoreEmptyInsertIsNoop(t *testing.T) {
	s := NewStore()
	s.Insert("ctx", "")
	assert.Empty(t, s.FlushAll())
	assert.Equal(t, "", s.Flush("ctx"))
}

func TestStoreUnknownContext(t *testing.T) {
	s := NewStore()
	assert.Equal(t, "", s.Flush("nope"))
}

func TestStorePartialFlushLeavesOrderIntact(t *testing.T) {
	s := NewStore()
	s.Insert("a", "1")
	s.Insert("b", "2")
	s.Insert("c", "3")
	_ = s.Flush("b")

	got := s.FlushAll()
	require.Equal(t, []ContextCSS{
		{Context: "a", CSS: "1"},
		{Context: "c", CSS: "3"},
	}, got)
}

func TestStoreReinsertAfterFlush(t *testing.T) {
	s := NewStore()
	s.Insert("ctx", "first")
	_ = s.Flush("ctx")
	s.Insert("ctx", "second")
	assert.Equal(t, "second", s.Flush("ctx"))
}

// A single shared instance is mutex-guarded, so concurrent inserts must
// neither race nor drop fragments.
func TestStoreConcurrentInserts(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	const n = 50
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Insert("ctx", fmt.Sprintf("frag%d", i))
		}(i)
	}
	wg.Wait()

	css := s.Flush("ctx")
	assert.Len(t, strings.Split(css, "\n"), n)
}
