package stylegen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Value is the parsed form of a raw descriptor value. The shape of a value
// is decided exactly once, at ingestion time, so the compiler and resolver
// never re-inspect raw input.
//
// Only Literal, Keyed, PresetRef, and CustomRef implement it.
type Value interface {
	styleValue()
}

// Literal is a plain CSS value, passed through verbatim. Units are never
// added or stripped; "0" is a present value, not an absent one.
type Literal string

func (Literal) styleValue() {}

// Keyed is a structured value whose entries expand into one declaration per
// subkey, e.g. {top, right, bottom, left} for box properties or
// {topLeft, ...} for radius corners. Absent subkeys produce no output.
type Keyed map[string]Value

func (Keyed) styleValue() {}

// PresetRef points at a themed preset value ("var:preset|TYPE|SLUG").
type PresetRef struct {
	Type string
	Slug string
}

func (PresetRef) styleValue() {}

// VarName returns the custom-property name the reference rewrites to.
func (r PresetRef) VarName() string {
	return "--wp--preset--" + kebabCase(r.Type) + "--" + kebabCase(r.Slug)
}

// CSS returns the var() expression for the reference.
func (r PresetRef) CSS() string {
	return "var(" + r.VarName() + ")"
}

// CustomRef points at a custom theme value ("var:custom|a|b|...").
type CustomRef struct {
	Path []string
}

func (CustomRef) styleValue() {}

// VarName returns the custom-property name the reference rewrites to.
func (r CustomRef) VarName() string {
	parts := make([]string, 0, len(r.Path))
	for _, p := range r.Path {
		parts = append(parts, kebabCase(p))
	}
	return "--wp--custom--" + strings.Join(parts, "--")
}

// CSS returns the var() expression for the reference.
func (r CustomRef) CSS() string {
	return "var(" + r.VarName() + ")"
}

const refPrefix = "var:"

// ParseValue classifies a raw descriptor value into its Value form.
// A nil result with nil error means the value is absent and must not emit a
// declaration. The only error condition is a malformed reference token; the
// caller is expected to log it and skip the leaf, never to abort a compile.
func ParseValue(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case Value:
		return v, nil
	case string:
		if strings.HasPrefix(v, refPrefix) {
			return parseRef(v)
		}
		return Literal(v), nil
	case int:
		return Literal(strconv.Itoa(v)), nil
	case int64:
		return Literal(strconv.FormatInt(v, 10)), nil
	case float64:
		return Literal(strconv.FormatFloat(v, 'f', -1, 64)), nil
	case map[string]any:
		return parseKeyed(v)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return parseKeyed(m)
	default:
		return nil, nil
	}
}

func parseKeyed(raw map[string]any) (Value, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	keyed := make(Keyed, len(raw))
	for k, rv := range raw {
		v, err := ParseValue(rv)
		if err != nil {
			// A bad subkey never poisons its siblings.
			continue
		}
		if v != nil {
			keyed[k] = v
		}
	}
	if len(keyed) == 0 {
		return nil, nil
	}
	return keyed, nil
}

// parseRef parses a reference token. Grammar:
//
//	var:preset|TYPE|SLUG   (exactly three non-empty segments)
//	var:custom|a|b|...     (two or more non-empty segments)
func parseRef(token string) (Value, error) {
	parts := strings.Split(strings.TrimPrefix(token, refPrefix), "|")
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("malformed reference token %q", token)
		}
	}
	switch parts[0] {
	case "preset":
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed reference token %q", token)
		}
		return PresetRef{Type: parts[1], Slug: parts[2]}, nil
	case "custom":
		if len(parts) < 2 {
			return nil, fmt.Errorf("malformed reference token %q", token)
		}
		return CustomRef{Path: parts[1:]}, nil
	default:
		return nil, fmt.Errorf("malformed reference token %q", token)
	}
}

// kebabCase converts a camelCase key to its kebab-case CSS form.
// Keys that are already kebab-case pass through unchanged.
func kebabCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	var prev rune
	for _, r := range s {
		switch {
		case r == '_' || r == ' ':
			r = '-'
		case unicode.IsUpper(r):
			if prev != 0 && prev != '-' {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
