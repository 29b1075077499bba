package stylegen

// PropertyDefinition maps one (category, subproperty) pair to its CSS
// output. Property is the camelCase CSS property used for scalar values;
// Sides maps the subkeys of a Keyed value to per-side/per-corner properties,
// expanded in SideOrder. ClassName is a printf template applied to a preset
// slug ("has-%s-color"); Marker is a fixed companion class added whenever
// the subproperty carries any value at all.
type PropertyDefinition struct {
	Property  string
	Sides     map[string]string
	SideOrder []string
	ClassName string
	Marker    string
}

// Registry is the immutable property table the compiler consults. It is
// built once (see DefaultRegistry) and read concurrently without locking.
// Category and subproperty declaration order is the traversal order of the
// compiler, which makes output deterministic for Go-map descriptors.
type Registry struct {
	categories map[string]map[string]PropertyDefinition
	catOrder   []string
	keyOrder   map[string][]string
	properties map[string]struct{}
}

// Lookup returns the definition for a (category, subproperty) pair.
// Unknown pairs report ok=false; callers skip them silently.
func (r *Registry) Lookup(category, key string) (PropertyDefinition, bool) {
	group, ok := r.categories[category]
	if !ok {
		return PropertyDefinition{}, false
	}
	def, ok := group[key]
	return def, ok
}

// Categories returns category names in declaration order.
func (r *Registry) Categories() []string {
	return r.catOrder
}

// Keys returns the subproperty names of a category in declaration order.
func (r *Registry) Keys(category string) []string {
	return r.keyOrder[category]
}

// SupportsProperty reports whether a camelCase CSS property is recognized
// by the direct-declarations path. Unknown properties are dropped there,
// so a typo or a third-party extension key can never emit a malformed
// declaration.
func (r *Registry) SupportsProperty(property string) bool {
	_, ok := r.properties[property]
	return ok
}

type registryBuilder struct {
	reg *Registry
}

func (b *registryBuilder) category(name string) *categoryBuilder {
	b.reg.categories[name] = make(map[string]PropertyDefinition)
	b.reg.catOrder = append(b.reg.catOrder, name)
	return &categoryBuilder{reg: b.reg, name: name}
}

type categoryBuilder struct {
	reg  *Registry
	name string
}

func (c *categoryBuilder) key(key string, def PropertyDefinition) *categoryBuilder {
	c.reg.categories[c.name][key] = def
	c.reg.keyOrder[c.name] = append(c.reg.keyOrder[c.name], key)
	if def.Property != "" {
		c.reg.properties[def.Property] = struct{}{}
	}
	for _, p := range def.Sides {
		c.reg.properties[p] = struct{}{}
	}
	return c
}

func boxSides(prefix, suffix string) (map[string]string, []string) {
	sides := map[string]string{
		"top":    prefix + "Top" + suffix,
		"right":  prefix + "Right" + suffix,
		"bottom": prefix + "Bottom" + suffix,
		"left":   prefix + "Left" + suffix,
	}
	return sides, []string{"top", "right", "bottom", "left"}
}

// DefaultRegistry builds the standard property table. The returned Registry
// is safe to share across compilers and goroutines.
func DefaultRegistry() *Registry {
	reg := &Registry{
		categories: make(map[string]map[string]PropertyDefinition),
		keyOrder:   make(map[string][]string),
		properties: make(map[string]struct{}),
	}
	b := &registryBuilder{reg: reg}

	b.category("color").
		key("text", PropertyDefinition{
			Property:  "color",
			ClassName: "has-%s-color",
			Marker:    "has-text-color",
		}).
		key("background", PropertyDefinition{
			Property:  "backgroundColor",
			ClassName: "has-%s-background-color",
			Marker:    "has-background",
		}).
		key("gradient", PropertyDefinition{
			Property:  "background",
			ClassName: "has-%s-gradient-background",
			Marker:    "has-background",
		})

	marginSides, sideOrder := boxSides("margin", "")
	paddingSides, _ := boxSides("padding", "")
	b.category("spacing").
		key("margin", PropertyDefinition{
			Property:  "margin",
			Sides:     marginSides,
			SideOrder: sideOrder,
		}).
		key("padding", PropertyDefinition{
			Property:  "padding",
			Sides:     paddingSides,
			SideOrder: sideOrder,
		})

	b.category("typography").
		key("fontFamily", PropertyDefinition{
			Property:  "fontFamily",
			ClassName: "has-%s-font-family",
		}).
		key("fontSize", PropertyDefinition{
			Property:  "fontSize",
			ClassName: "has-%s-font-size",
		}).
		key("fontStyle", PropertyDefinition{Property: "fontStyle"}).
		key("fontWeight", PropertyDefinition{Property: "fontWeight"}).
		key("lineHeight", PropertyDefinition{Property: "lineHeight"}).
		key("letterSpacing", PropertyDefinition{Property: "letterSpacing"}).
		key("textDecoration", PropertyDefinition{Property: "textDecoration"}).
		key("textTransform", PropertyDefinition{Property: "textTransform"})

	borderSideGroup := func(side string) PropertyDefinition {
		return PropertyDefinition{
			Sides: map[string]string{
				"width": "border" + side + "Width",
				"style": "border" + side + "Style",
				"color": "border" + side + "Color",
			},
			SideOrder: []string{"width", "style", "color"},
		}
	}
	b.category("border").
		key("width", PropertyDefinition{Property: "borderWidth"}).
		key("style", PropertyDefinition{Property: "borderStyle"}).
		key("color", PropertyDefinition{Property: "borderColor"}).
		key("radius", PropertyDefinition{
			Property: "borderRadius",
			Sides: map[string]string{
				"topLeft":     "borderTopLeftRadius",
				"topRight":    "borderTopRightRadius",
				"bottomRight": "borderBottomRightRadius",
				"bottomLeft":  "borderBottomLeftRadius",
			},
			SideOrder: []string{"topLeft", "topRight", "bottomRight", "bottomLeft"},
		}).
		key("top", borderSideGroup("Top")).
		key("right", borderSideGroup("Right")).
		key("bottom", borderSideGroup("Bottom")).
		key("left", borderSideGroup("Left"))

	b.category("dimensions").
		key("minHeight", PropertyDefinition{Property: "minHeight"}).
		key("aspectRatio", PropertyDefinition{Property: "aspectRatio"})

	// The direct-declarations path accepts common CSS properties beyond
	// those reachable from the category table.
	for _, p := range extraProperties {
		reg.properties[p] = struct{}{}
	}

	return reg
}

// extraProperties lists camelCase CSS properties accepted by CompileRules
// in addition to everything the category definitions produce.
var extraProperties = []string{
	"alignItems",
	"background",
	"backgroundImage",
	"backgroundPosition",
	"backgroundRepeat",
	"backgroundSize",
	"border",
	"bottom",
	"boxShadow",
	"boxSizing",
	"clear",
	"columnGap",
	"cursor",
	"display",
	"filter",
	"flex",
	"flexBasis",
	"flexDirection",
	"flexGrow",
	"flexShrink",
	"flexWrap",
	"float",
	"gap",
	"gridTemplateColumns",
	"gridTemplateRows",
	"height",
	"justifyContent",
	"left",
	"maxHeight",
	"maxWidth",
	"minWidth",
	"objectFit",
	"objectPosition",
	"opacity",
	"outline",
	"outlineColor",
	"outlineOffset",
	"outlineStyle",
	"outlineWidth",
	"overflow",
	"overflowX",
	"overflowY",
	"position",
	"right",
	"rowGap",
	"textAlign",
	"top",
	"transform",
	"transition",
	"verticalAlign",
	"visibility",
	"whiteSpace",
	"width",
	"wordBreak",
	"zIndex",
}
