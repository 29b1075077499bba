// Package document loads style descriptor documents: YAML files listing
// rules to compile, each carrying a selector, a target context, and either
// a nested styles descriptor or a flat declarations map.
package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yacobolo/stylegen"
)

// Entry is one compilable unit of a document. Exactly one of Styles or
// Declarations is expected; an entry carrying neither is rejected at load
// time rather than silently compiling to nothing.
type Entry struct {
	Selector     string
	Context      string
	Styles       stylegen.Styles
	Declarations []stylegen.Declaration
}

// Document is one parsed descriptor file.
type Document struct {
	Path    string
	Entries []Entry
}

type rawEntry struct {
	Selector     string                    `yaml:"selector"`
	Context      string                    `yaml:"context"`
	Styles       map[string]map[string]any `yaml:"styles"`
	Declarations yaml.Node                 `yaml:"declarations"`
}

type rawDocument struct {
	Rules []rawEntry `yaml:"rules"`
}

// Load reads and parses a descriptor file.
func Load(path string) (*Document, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(content, path)
}

// Parse decodes descriptor content. Declaration order inside a rule is
// preserved exactly as written, which fixes the output declaration order.
func Parse(content []byte, path string) (*Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	doc := &Document{Path: path}
	for i, r := range raw.Rules {
		entry := Entry{
			Selector: r.Selector,
			Context:  r.Context,
		}
		if len(r.Styles) > 0 {
			entry.Styles = stylegen.Styles(r.Styles)
		}
		decls, err := declarationsFromNode(&r.Declarations)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: rule %d: %w", path, i, err)
		}
		entry.Declarations = decls

		if entry.Styles == nil && len(entry.Declarations) == 0 {
			return nil, fmt.Errorf("parsing %s: rule %d: needs styles or declarations", path, i)
		}
		doc.Entries = append(doc.Entries, entry)
	}
	return doc, nil
}

// declarationsFromNode walks a YAML mapping node so key order survives
// decoding; a plain Go map would lose it.
func declarationsFromNode(node *yaml.Node) ([]stylegen.Declaration, error) {
	if node == nil || node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("declarations must be a mapping")
	}

	var decls []stylegen.Declaration
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		value := node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("declaration %q must have a scalar value", key.Value)
		}
		decls = append(decls, stylegen.Declaration{
			Property: key.Value,
			Value:    value.Value,
		})
	}
	return decls, nil
}
