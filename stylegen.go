// Package stylegen compiles structured style descriptors into CSS text.
//
// A descriptor is a nested tree of style categories (color, spacing,
// typography, border, dimensions) whose leaf values are literals,
// per-side boxes, or reference tokens pointing at themed presets
// ("var:preset|color|vivid-red"). The compiler walks the tree against an
// immutable property registry and emits flat rule records; the serializer
// renders them as wire-format CSS.
//
// # Compiling
//
//	c := stylegen.NewCompiler()
//	records := c.Compile(stylegen.Styles{
//		"color":   {"text": "var:preset|color|vivid-red"},
//		"spacing": {"padding": map[string]any{"top": "1px", "left": "2px"}},
//	}, stylegen.Options{Selector: ".wp-block"})
//	css := stylegen.Serialize(records)
//
// # Buffering
//
// Generated CSS is buffered per logical context in a Store owned by the
// request, then drained once near the end of the response cycle:
//
//	store := stylegen.NewStore()
//	c.Generate(styles, stylegen.Options{
//		Selector: ".wp-block",
//		Context:  "block-supports",
//		Enqueue:  true,
//	}, store)
//	for _, bucket := range store.FlushAll() {
//		// hand bucket.CSS to the asset pipeline
//	}
//
// The engine has no fatal errors: unknown keys, unresolvable values, and
// malformed reference tokens are skipped leaf by leaf, and an empty or
// fully invalid descriptor compiles to an empty string.
package stylegen

// Result is the output of Generate.
type Result struct {
	// CSS is the serialized text: a full rule when the options carry a
	// selector, an inline declaration list otherwise.
	CSS string
	// Declarations are the flat rule records the CSS was rendered from,
	// in compile order.
	Declarations []RuleRecord
	// ClassNames are the preset utility classes the descriptor maps to.
	ClassNames []string
}

// Generate compiles a descriptor, serializes it, and, when Enqueue and
// Context are set, buffers the rule text in the store. The store may be nil
// when Enqueue is unset.
func (c *Compiler) Generate(styles Styles, opts Options, store *Store) Result {
	records := c.Compile(styles, opts)

	res := Result{Declarations: records, ClassNames: c.ClassNames(styles)}
	if opts.Selector != "" {
		res.CSS = Serialize(records)
	} else {
		res.CSS = SerializeCompact(records)
	}

	if opts.Enqueue && opts.Context != "" && store != nil {
		store.Insert(opts.Context, Serialize(records))
	}
	return res
}
