package stylegen

// declaration is one resolved (property, value) pair. Property stays
// camelCase until serialization.
type declaration struct {
	property string
	value    string
}

// resolve turns a parsed Value into zero or more declarations under a
// definition. An empty result means the leaf is omitted; it is never an
// error.
func resolve(def PropertyDefinition, v Value) []declaration {
	switch val := v.(type) {
	case Literal:
		if def.Property == "" || val == "" {
			return nil
		}
		return []declaration{{def.Property, string(val)}}
	case PresetRef:
		if def.Property == "" {
			return nil
		}
		return []declaration{{def.Property, val.CSS()}}
	case CustomRef:
		if def.Property == "" {
			return nil
		}
		return []declaration{{def.Property, val.CSS()}}
	case Keyed:
		return resolveKeyed(def, val)
	default:
		return nil
	}
}

// resolveKeyed expands a structured value through the definition's side
// table, in the table's canonical order. Sides the value does not carry are
// skipped, never emitted empty.
func resolveKeyed(def PropertyDefinition, val Keyed) []declaration {
	if len(def.SideOrder) == 0 {
		return nil
	}
	var out []declaration
	for _, side := range def.SideOrder {
		sv, ok := val[side]
		if !ok || sv == nil {
			continue
		}
		property := def.Sides[side]
		switch s := sv.(type) {
		case Literal:
			if s != "" {
				out = append(out, declaration{property, string(s)})
			}
		case PresetRef:
			out = append(out, declaration{property, s.CSS()})
		case CustomRef:
			out = append(out, declaration{property, s.CSS()})
		}
	}
	return out
}
