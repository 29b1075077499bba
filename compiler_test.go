package stylegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSingleDeclarations(t *testing.T) {
	c := NewCompiler()

	tests := []struct {
		name   string
		styles Styles
		want   []RuleRecord
	}{
		{
			name:   "text color literal",
			styles: Styles{"color": {"text": "#cf2e2e"}},
			want: []RuleRecord{
				{Selector: ".a", Key: "color", Value: "#cf2e2e"},
			},
		},
		{
			name:   "background preset reference",
			styles: Styles{"color": {"background": "var:preset|color|pale-pink"}},
			want: []RuleRecord{
				{Selector: ".a", Key: "backgroundColor", Value: "var(--wp--preset--color--pale-pink)"},
			},
		},
		{
			name:   "gradient targets background",
			styles: Styles{"color": {"gradient": "var:preset|gradient|cool-to-warm"}},
			want: []RuleRecord{
				{Selector: ".a", Key: "background", Value: "var(--wp--preset--gradient--cool-to-warm)"},
			},
		},
		{
			name:   "typography scalar",
			styles: Styles{"typography": {"fontWeight": "700"}},
			want: []RuleRecord{
				{Selector: ".a", Key: "fontWeight", Value: "700"},
			},
		},
		{
			name:   "dimensions",
			styles: Styles{"dimensions": {"minHeight": "50vh", "aspectRatio": "16/9"}},
			want: []RuleRecord{
				{Selector: ".a", Key: "minHeight", Value: "50vh"},
				{Selector: ".a", Key: "aspectRatio", Value: "16/9"},
			},
		},
		{
			name:   "margin shorthand literal",
			styles: Styles{"spacing": {"margin": "10px"}},
			want: []RuleRecord{
				{Selector: ".a", Key: "margin", Value: "10px"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Compile(tt.styles, Options{Selector: ".a"})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileBoxExpansion(t *testing.T) {
	c := NewCompiler()

	// bottom and right are absent and must not appear at all.
	got := c.Compile(Styles{
		"spacing": {"padding": map[string]any{"top": "1px", "left": "2px"}},
	}, Options{Selector: ".a"})

	want := []RuleRecord{
		{Selector: ".a", Key: "paddingTop", Value: "1px"},
		{Selector: ".a", Key: "paddingLeft", Value: "2px"},
	}
	assert.Equal(t, want, got)
}

func TestCompileBorder(t *testing.T) {
	c := NewCompiler()

	tests := []struct {
		name   string
		styles Styles
		want   []RuleRecord
	}{
		{
			name:   "radius shorthand",
			styles: Styles{"border": {"radius": "4px"}},
			want: []RuleRecord{
				{Selector: ".a", Key: "borderRadius", Value: "4px"},
			},
		},
		{
			name: "radius per corner",
			styles: Styles{"border": {"radius": map[string]any{
				"topLeft":     "1px",
				"bottomRight": "3px",
			}}},
			want: []RuleRecord{
				{Selector: ".a", Key: "borderTopLeftRadius", Value: "1px"},
				{Selector: ".a", Key: "borderBottomRightRadius", Value: "3px"},
			},
		},
		{
			name: "per-side group",
			styles: Styles{"border": {"top": map[string]any{
				"width": "2px",
				"style": "dashed",
				"color": "var:preset|color|vivid-red",
			}}},
			want: []RuleRecord{
				{Selector: ".a", Key: "borderTopWidth", Value: "2px"},
				{Selector: ".a", Key: "borderTopStyle", Value: "dashed"},
				{Selector: ".a", Key: "borderTopColor", Value: "var(--wp--preset--color--vivid-red)"},
			},
		},
		{
			name: "flat width style color order follows registry",
			styles: Styles{"border": {
				"color": "#000",
				"width": "1px",
				"style": "solid",
			}},
			want: []RuleRecord{
				{Selector: ".a", Key: "borderWidth", Value: "1px"},
				{Selector: ".a", Key: "borderStyle", Value: "solid"},
				{Selector: ".a", Key: "borderColor", Value: "#000"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Compile(tt.styles, Options{Selector: ".a"})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompilePseudoSelectors(t *testing.T) {
	c := NewCompiler()

	styles := Styles{
		"color": {
			"text":   "green",
			":hover": map[string]any{"text": "blue"},
			"focus":  map[string]any{"background": "#fff"},
		},
	}
	got := c.Compile(styles, Options{Selector: ".link"})

	want := []RuleRecord{
		{Selector: ".link", Key: "color", Value: "green"},
		{Selector: ".link:hover", Key: "color", Value: "blue"},
		{Selector: ".link:focus", Key: "backgroundColor", Value: "#fff"},
	}
	assert.Equal(t, want, got)
}

func TestCompileSkipsUnknownAndInvalid(t *testing.T) {
	c := NewCompiler()

	tests := []struct {
		name   string
		styles Styles
		want   []RuleRecord
	}{
		{
			name: "unknown category",
			styles: Styles{
				"teleportation": {"speed": "fast"},
				"color":         {"text": "red"},
			},
			want: []RuleRecord{{Selector: ".a", Key: "color", Value: "red"}},
		},
		{
			name: "unknown subproperty",
			styles: Styles{
				"color": {"glow": "lots", "text": "red"},
			},
			want: []RuleRecord{{Selector: ".a", Key: "color", Value: "red"}},
		},
		{
			name: "malformed reference token skips only its leaf",
			styles: Styles{
				"color": {"background": "var:preset|color", "text": "red"},
			},
			want: []RuleRecord{{Selector: ".a", Key: "color", Value: "red"}},
		},
		{
			name: "empty string value omitted",
			styles: Styles{
				"color": {"text": ""},
			},
			want: nil,
		},
		{
			name: "nil value omitted",
			styles: Styles{
				"color": {"text": nil},
			},
			want: nil,
		},
		{
			name:   "empty descriptor",
			styles: Styles{},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Compile(tt.styles, Options{Selector: ".a"})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileDefaultSelector(t *testing.T) {
	c := NewCompiler()
	got := c.Compile(Styles{"color": {"text": "red"}}, Options{})
	require.Len(t, got, 1)
	assert.Equal(t, DefaultRootSelector, got[0].Selector)

	custom := NewCompiler(WithRootSelector("body"))
	got = custom.Compile(Styles{"color": {"text": "red"}}, Options{})
	require.Len(t, got, 1)
	assert.Equal(t, "body", got[0].Selector)
}

func TestCompileRules(t *testing.T) {
	c := NewCompiler()

	tests := []struct {
		name  string
		rules []Rule
		want  []RuleRecord
	}{
		{
			name: "known properties in declaration order",
			rules: []Rule{{
				Selector: ".a",
				Declarations: []Declaration{
					{Property: "color", Value: "white"},
					{Property: "height", Value: "100px"},
					{Property: "borderStyle", Value: "solid"},
				},
			}},
			want: []RuleRecord{
				{Selector: ".a", Key: "color", Value: "white"},
				{Selector: ".a", Key: "height", Value: "100px"},
				{Selector: ".a", Key: "borderStyle", Value: "solid"},
			},
		},
		{
			name: "unknown property skipped",
			rules: []Rule{{
				Selector: ".b",
				Declarations: []Declaration{
					{Property: "bogusProp", Value: "x"},
					{Property: "color", Value: "red"},
				},
			}},
			want: []RuleRecord{
				{Selector: ".b", Key: "color", Value: "red"},
			},
		},
		{
			name: "reference tokens resolve",
			rules: []Rule{{
				Selector: ".c",
				Declarations: []Declaration{
					{Property: "color", Value: "var:preset|color|vivid-red"},
				},
			}},
			want: []RuleRecord{
				{Selector: ".c", Key: "color", Value: "var(--wp--preset--color--vivid-red)"},
			},
		},
		{
			name: "empty selector falls back to root",
			rules: []Rule{{
				Declarations: []Declaration{{Property: "color", Value: "red"}},
			}},
			want: []RuleRecord{
				{Selector: ":root", Key: "color", Value: "red"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.CompileRules(tt.rules)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassNames(t *testing.T) {
	c := NewCompiler()

	tests := []struct {
		name   string
		styles Styles
		want   []string
	}{
		{
			name:   "preset text color",
			styles: Styles{"color": {"text": "var:preset|color|vivid-red"}},
			want:   []string{"has-text-color", "has-vivid-red-color"},
		},
		{
			name:   "custom text color still marks",
			styles: Styles{"color": {"text": "#123456"}},
			want:   []string{"has-text-color"},
		},
		{
			name: "background and gradient share a marker",
			styles: Styles{"color": {
				"background": "var:preset|color|pale-pink",
				"gradient":   "var:preset|gradient|sunset",
			}},
			want: []string{
				"has-background",
				"has-pale-pink-background-color",
				"has-sunset-gradient-background",
			},
		},
		{
			name:   "font size preset",
			styles: Styles{"typography": {"fontSize": "var:preset|fontSize|large"}},
			want:   []string{"has-large-font-size"},
		},
		{
			name:   "no class-bearing values",
			styles: Styles{"spacing": {"padding": "1px"}},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ClassNames(tt.styles)
			assert.Equal(t, tt.want, got)
		})
	}
}
