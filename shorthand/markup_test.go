package shorthand

import (
	"testing"

	"github.com/fatih/color"

	"github.com/treewire/go-treewire/desc"
)

type renderTest struct {
	name string
	in   Shorthand
	want string
}

var renderTests = []renderTest{
	{
		name: "text",
		in:   Text("hello"),
		want: "hello",
	},
	{
		name: "text is not escaped",
		in:   Text("a < b & c"),
		want: "a < b & c",
	},
	{
		name: "self closing without content key",
		in:   &Element{Tag: "br"},
		want: "<br/>",
	},
	{
		name: "empty content renders open and close",
		in:   &Element{Tag: "p", Content: []Shorthand{}},
		want: "<p></p>",
	},
	{
		name: "element with attributes",
		in: &Element{
			Tag:        "a",
			Attributes: attrsFrom("href", "#", "class", "x"),
			Content:    []Shorthand{Text("here")},
		},
		want: `<a href="#" class="x">here</a>`,
	},
	{
		name: "self closing with attributes",
		in:   &Element{Tag: "img", Attributes: attrsFrom("src", "i.png")},
		want: `<img src="i.png"/>`,
	},
	{
		name: "nested elements",
		in: &Element{Tag: "ul", Content: []Shorthand{
			&Element{Tag: "li", Content: []Shorthand{Text("a")}},
			&Element{Tag: "li", Content: []Shorthand{Text("b")}},
		}},
		want: "<ul><li>a</li><li>b</li></ul>",
	},
	{
		name: "cdata keeps its padding spaces",
		in:   &CData{Data: "x < y"},
		want: "<![CDATA[ x < y ]]>",
	},
	{
		name: "comment",
		in:   &Comment{Text: "note"},
		want: "<!--note-->",
	},
	{
		name: "processing instruction as comment",
		in:   &ProcessingInstruction{Target: "xml-stylesheet", Data: `href="s.css"`},
		want: `<!--xml-stylesheet href="s.css"-->`,
	},
	{
		name: "bare attribute",
		in:   &Attribute{Name: "class", Value: sp("main")},
		want: `class="main"`,
	},
	{
		name: "attribute without value",
		in:   &Attribute{Name: "disabled"},
		want: `disabled=""`,
	},
	{
		name: "fragment concatenates",
		in: &Fragment{Content: []Shorthand{
			Text("a"),
			&Element{Tag: "b", Content: []Shorthand{Text("x")}},
			Text("c"),
		}},
		want: "a<b>x</b>c",
	},
	{
		name: "empty fragment",
		in:   &Fragment{},
		want: "",
	},
}

func attrsFrom(pairs ...string) *desc.Attrs { return desc.AttrsFrom(pairs...) }

func TestRender(t *testing.T) {
	for _, tc := range renderTests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderColorsNilSafe(t *testing.T) {
	// nil colors must behave exactly like Render
	for _, tc := range renderTests {
		if got := RenderColors(tc.in, nil); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRenderColorsDiffer(t *testing.T) {
	// fatih/color disables itself off-terminal; force it on for the test
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	in := &Element{Tag: "p", Content: []Shorthand{Text("x")}}
	plain := Render(in)
	colored := RenderColors(in, NewColors())
	if colored == plain {
		t.Error("colored output identical to plain")
	}
}
