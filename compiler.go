package stylegen

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Styles is a style descriptor: category name to subproperty values.
// Values are raw (strings, numbers, nested maps, reference tokens) and are
// classified by ParseValue during compilation. The descriptor is never
// mutated.
type Styles map[string]map[string]any

// Options controls one compile call.
type Options struct {
	// Selector overrides the compiler's root selector for emitted rules.
	Selector string
	// Context names the store bucket used when Enqueue is set.
	Context string
	// Enqueue buffers the serialized rule text in the store passed to
	// Generate.
	Enqueue bool
}

// RuleRecord is one compiled declaration bound to a selector. Key is the
// camelCase CSS property; serialization converts it to kebab-case.
type RuleRecord struct {
	Selector string
	Key      string
	Value    string
}

// Declaration is one ordered (property, value) pair of the
// direct-declarations path.
type Declaration struct {
	Property string
	Value    any
}

// Rule is a selector with an ordered declaration list, the input of
// CompileRules.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// DefaultRootSelector is used when neither the compiler nor the options
// name a selector.
const DefaultRootSelector = ":root"

// Compiler walks style descriptors against a Registry and emits
// RuleRecords. It holds no mutable state; one instance serves any number
// of goroutines.
type Compiler struct {
	reg  *Registry
	log  zerolog.Logger
	root string
}

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithRegistry replaces the default property table.
func WithRegistry(reg *Registry) CompilerOption {
	return func(c *Compiler) { c.reg = reg }
}

// WithLogger sets the diagnostics logger. Only malformed reference tokens
// and skipped declarations are reported, at debug level.
func WithLogger(log zerolog.Logger) CompilerOption {
	return func(c *Compiler) { c.log = log }
}

// WithRootSelector sets the selector used when Options.Selector is empty.
func WithRootSelector(selector string) CompilerOption {
	return func(c *Compiler) { c.root = selector }
}

// NewCompiler builds a Compiler over DefaultRegistry with a no-op logger.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		reg:  DefaultRegistry(),
		log:  zerolog.Nop(),
		root: DefaultRootSelector,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// pseudoSelectors are the subproperty keys treated as pseudo-selector
// branches, in traversal order. Descriptors may spell them with or without
// the leading colon.
var pseudoSelectors = []string{
	"hover",
	"focus",
	"focus-visible",
	"focus-within",
	"active",
	"visited",
	"link",
	"any-link",
}

// Compile walks the descriptor and returns the flat rule records. Unknown
// categories and subproperties produce nothing; a bad leaf never suppresses
// its siblings. Traversal follows the registry's declaration order, so the
// output is deterministic regardless of map construction order.
func (c *Compiler) Compile(styles Styles, opts Options) []RuleRecord {
	selector := opts.Selector
	if selector == "" {
		selector = c.root
	}
	return c.compile(styles, selector)
}

func (c *Compiler) compile(styles Styles, selector string) []RuleRecord {
	var records []RuleRecord
	for _, category := range c.reg.Categories() {
		group := styles[category]
		if len(group) == 0 {
			continue
		}
		for _, key := range c.reg.Keys(category) {
			raw, ok := group[key]
			if !ok {
				continue
			}
			def, _ := c.reg.Lookup(category, key)
			v, err := ParseValue(raw)
			if err != nil {
				c.log.Debug().Str("category", category).Str("key", key).
					Msg(err.Error())
				continue
			}
			if v == nil {
				continue
			}
			for _, d := range resolve(def, v) {
				records = append(records, RuleRecord{
					Selector: selector,
					Key:      d.property,
					Value:    d.value,
				})
			}
		}
		for _, pseudo := range pseudoSelectors {
			raw, ok := group[pseudo]
			if !ok {
				raw, ok = group[":"+pseudo]
			}
			if !ok {
				continue
			}
			nested := asGroup(raw)
			if nested == nil {
				continue
			}
			records = append(records, c.compile(
				Styles{category: nested},
				selector+":"+pseudo,
			)...)
		}
	}
	return records
}

// CompileRules compiles explicit (selector, declarations) rules. Properties
// the registry does not recognize are skipped silently; declaration order
// is preserved.
func (c *Compiler) CompileRules(rules []Rule) []RuleRecord {
	var records []RuleRecord
	for _, rule := range rules {
		selector := rule.Selector
		if selector == "" {
			selector = c.root
		}
		for _, d := range rule.Declarations {
			if !c.reg.SupportsProperty(d.Property) {
				c.log.Debug().Str("property", d.Property).
					Msg("unknown css property skipped")
				continue
			}
			v, err := ParseValue(d.Value)
			if err != nil {
				c.log.Debug().Str("property", d.Property).Msg(err.Error())
				continue
			}
			var text string
			switch val := v.(type) {
			case Literal:
				text = string(val)
			case PresetRef:
				text = val.CSS()
			case CustomRef:
				text = val.CSS()
			default:
				continue
			}
			if text == "" {
				continue
			}
			records = append(records, RuleRecord{
				Selector: selector,
				Key:      d.Property,
				Value:    text,
			})
		}
	}
	return records
}

// ClassNames returns the utility class names a descriptor maps to, instead
// of (or alongside) inline declarations. Preset references yield the
// definition's templated class; any present value yields the definition's
// marker class. Order follows the registry, duplicates are dropped.
func (c *Compiler) ClassNames(styles Styles) []string {
	var names []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if name == "" {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, category := range c.reg.Categories() {
		group := styles[category]
		if len(group) == 0 {
			continue
		}
		for _, key := range c.reg.Keys(category) {
			raw, ok := group[key]
			if !ok {
				continue
			}
			def, _ := c.reg.Lookup(category, key)
			if def.ClassName == "" && def.Marker == "" {
				continue
			}
			v, err := ParseValue(raw)
			if err != nil || v == nil {
				continue
			}
			add(def.Marker)
			if ref, ok := v.(PresetRef); ok && def.ClassName != "" {
				add(fmt.Sprintf(def.ClassName, kebabCase(ref.Slug)))
			}
		}
	}
	return names
}

// asGroup coerces a pseudo-selector subtree into subproperty form.
func asGroup(raw any) map[string]any {
	switch m := raw.(type) {
	case map[string]any:
		return m
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	default:
		return nil
	}
}
