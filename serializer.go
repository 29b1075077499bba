package stylegen

import "strings"

// Serialize renders rule records as wire-format CSS text: no whitespace,
// one block per selector. Records sharing a selector merge into a single
// block in first-seen order; a later record with the same (selector, key)
// overrides the earlier value without duplicating the declaration. Output
// is byte-identical for identical input sequences.
func Serialize(records []RuleRecord) string {
	if len(records) == 0 {
		return ""
	}

	type block struct {
		keys  []string
		decls map[string]string
	}
	var order []string
	blocks := make(map[string]*block)

	for _, r := range records {
		blk, ok := blocks[r.Selector]
		if !ok {
			blk = &block{decls: make(map[string]string)}
			blocks[r.Selector] = blk
			order = append(order, r.Selector)
		}
		if _, dup := blk.decls[r.Key]; !dup {
			blk.keys = append(blk.keys, r.Key)
		}
		blk.decls[r.Key] = r.Value
	}

	var b strings.Builder
	for _, selector := range order {
		blk := blocks[selector]
		if len(blk.keys) == 0 {
			continue
		}
		b.WriteString(selector)
		b.WriteByte('{')
		for _, key := range blk.keys {
			b.WriteString(kebabCase(key))
			b.WriteByte(':')
			b.WriteString(blk.decls[key])
			b.WriteByte(';')
		}
		b.WriteByte('}')
	}
	return b.String()
}

// SerializeCompact renders records as a semicolon-joined declaration list
// with no selector, for inline style attributes. Selectors are ignored;
// merge semantics match Serialize.
func SerializeCompact(records []RuleRecord) string {
	if len(records) == 0 {
		return ""
	}

	var keys []string
	decls := make(map[string]string)
	for _, r := range records {
		if _, dup := decls[r.Key]; !dup {
			keys = append(keys, r.Key)
		}
		decls[r.Key] = r.Value
	}

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, kebabCase(key)+":"+decls[key])
	}
	return strings.Join(parts, ";")
}
