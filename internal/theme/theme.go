// Package theme loads preset definitions from a YAML theme file and turns
// them into the custom-property stylesheet the engine's reference tokens
// resolve against.
package theme

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/yacobolo/stylegen"
)

// Preset is one themed value, addressable as var:preset|TYPE|SLUG.
// Slugs may not contain '|' (0x7C), which is reserved by the token grammar.
type Preset struct {
	Slug  string `koanf:"slug" validate:"required,excludesall=0x7C"`
	Value string `koanf:"value" validate:"required"`
}

// Theme is a set of presets grouped by preset type (color, gradient,
// fontSize, ...).
type Theme struct {
	Presets map[string][]Preset `koanf:"presets"`
}

// Load reads and validates a theme file.
func Load(path string) (*Theme, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading theme file %s: %w", path, err)
	}

	var t Theme
	if err := k.Unmarshal("", &t); err != nil {
		return nil, fmt.Errorf("decoding theme file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme file %s: %w", path, err)
	}
	return &t, nil
}

// Validate checks every preset entry.
func (t *Theme) Validate() error {
	v := validator.New()
	for presetType, presets := range t.Presets {
		for i, p := range presets {
			if err := v.Struct(p); err != nil {
				return fmt.Errorf("preset %s[%d]: %w", presetType, i, err)
			}
		}
	}
	return nil
}

// Lookup returns the literal value behind a preset reference.
func (t *Theme) Lookup(presetType, slug string) (string, bool) {
	for _, p := range t.Presets[presetType] {
		if p.Slug == slug {
			return p.Value, true
		}
	}
	return "", false
}

// Stylesheet emits the custom-property definitions for every preset under
// the given selector, through the engine's serializer. Preset types render
// in sorted order, presets in declaration order, so output is
// deterministic.
func (t *Theme) Stylesheet(selector string) string {
	if selector == "" {
		selector = stylegen.DefaultRootSelector
	}

	types := make([]string, 0, len(t.Presets))
	for presetType := range t.Presets {
		types = append(types, presetType)
	}
	sort.Strings(types)

	var records []stylegen.RuleRecord
	for _, presetType := range types {
		for _, p := range t.Presets[presetType] {
			ref := stylegen.PresetRef{Type: presetType, Slug: p.Slug}
			records = append(records, stylegen.RuleRecord{
				Selector: selector,
				Key:      ref.VarName(),
				Value:    p.Value,
			})
		}
	}
	return stylegen.Serialize(records)
}
