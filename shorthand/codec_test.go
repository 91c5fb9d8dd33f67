package shorthand

import (
	"encoding/json"
	"testing"

	"github.com/treewire/go-treewire/desc"
)

type fromDescTest struct {
	name string
	in   *desc.Node
	ok   bool
	want Shorthand
}

var fromDescTests = []fromDescTest{
	{
		name: "text",
		in:   desc.Text("hi"),
		ok:   true,
		want: Text("hi"),
	},
	{
		name: "element no children",
		in:   desc.Element("br", nil),
		ok:   true,
		want: &Element{Tag: "br"},
	},
	{
		name: "element empty attributes omitted",
		in:   desc.Element("p", desc.NewAttrs()),
		ok:   true,
		want: &Element{Tag: "p"},
	},
	{
		name: "element with attributes",
		in:   desc.Element("a", desc.AttrsFrom("href", "#")),
		ok:   true,
		want: &Element{Tag: "a", Attributes: desc.AttrsFrom("href", "#")},
	},
	{
		name: "element explicit empty children",
		in:   &desc.Node{Kind: desc.ElementKind, Name: "p", Children: []*desc.Node{}},
		ok:   true,
		want: &Element{Tag: "p", Content: []Shorthand{}},
	},
	{
		name: "unnamed element is nothing",
		in:   &desc.Node{Kind: desc.ElementKind},
		ok:   false,
	},
	{
		name: "document is nothing",
		in:   desc.Document(desc.Element("html", nil)),
		ok:   false,
	},
	{
		name: "doctype is nothing",
		in:   desc.DocumentType("html"),
		ok:   false,
	},
	{
		name: "cdata",
		in:   desc.CData("raw"),
		ok:   true,
		want: &CData{Data: "raw"},
	},
	{
		name: "pi",
		in:   desc.ProcessingInstruction("t", "d"),
		ok:   true,
		want: &ProcessingInstruction{Target: "t", Data: "d"},
	},
	{
		name: "skipped child keeps the content sequence",
		in:   desc.Element("p", nil, desc.DocumentType("html")),
		ok:   true,
		want: &Element{Tag: "p", Content: []Shorthand{}},
	},
	{
		name: "fragment",
		in:   desc.Fragment(desc.Text("a")),
		ok:   true,
		want: &Fragment{Content: []Shorthand{Text("a")}},
	},
}

func TestFromDescription(t *testing.T) {
	for _, tc := range fromDescTests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FromDescription(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !tc.ok {
				return
			}
			if !equalShorthand(got, tc.want) {
				t.Errorf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}

// FromDescription then ToDescription must reproduce the description for
// shapes that have a shorthand form.
func TestDescriptionRoundTrip(t *testing.T) {
	for _, d := range []*desc.Node{
		desc.Text("hi"),
		desc.Comment("note"),
		desc.CData("raw"),
		desc.ProcessingInstruction("t", "d"),
		desc.Element("br", nil),
		desc.Element("a", desc.AttrsFrom("href", "#", "class", "x"),
			desc.Text("see "),
			desc.Element("b", nil, desc.Text("here"))),
		desc.Fragment(desc.Text("a"), desc.Element("b", nil)),
	} {
		s, ok := FromDescription(d)
		if !ok {
			t.Fatalf("%s %q has no shorthand", d.Kind, d.Name)
		}
		back := ToDescription(s)
		if !d.Equal(back) {
			t.Errorf("%s %q diverged: %+v", d.Kind, d.Name, back)
		}
	}
}

type jsonShorthandTest struct {
	name string
	in   string
	want string // rendered markup, as a compact fingerprint
}

var jsonShorthandTests = []jsonShorthandTest{
	{"text", `"hi"`, "hi"},
	{"self closing", `{"tag":"br"}`, "<br/>"},
	{"empty content", `{"tag":"p","content":[]}`, "<p></p>"},
	{"null content", `{"tag":"p","content":null}`, "<p></p>"},
	{"attrs keep order", `{"tag":"a","attributes":{"href":"#","class":"x"}}`, `<a href="#" class="x"/>`},
	{"nested", `{"tag":"ul","content":[{"tag":"li","content":["a"]}]}`, "<ul><li>a</li></ul>"},
	{"fragment", `{"content":["a","b"]}`, "ab"},
	{"comment", `{"comment":"note"}`, "<!--note-->"},
	{"cdata", `{"cData":"raw"}`, "<![CDATA[ raw ]]>"},
}

func TestUnmarshalJSON(t *testing.T) {
	for _, tc := range jsonShorthandTests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Unmarshal([]byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if got := Render(s); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUnmarshalJSONRejects(t *testing.T) {
	for _, in := range []string{`3`, `true`, `null`, `[1]`, `{"tag":3}`, `{bad`} {
		if _, err := Unmarshal([]byte(in)); err == nil {
			t.Errorf("%s: no error", in)
		}
	}
}

// Marshal then Unmarshal must preserve the rendered form, including the
// presence or absence of the content key.
func TestMarshalJSONRoundTrip(t *testing.T) {
	for _, tc := range renderTests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := json.Marshal(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			back, err := Unmarshal(d)
			if err != nil {
				t.Fatalf("%s: %v", d, err)
			}
			if got := Render(back); got != tc.want {
				t.Errorf("round trip via %s rendered %q, want %q", d, got, tc.want)
			}
		})
	}
}

func TestUnmarshalYAML(t *testing.T) {
	in := []byte(`tag: a
attributes:
  href: "#"
  class: x
content:
  - "see "
  - tag: b
    content: ["here"]
`)
	s, err := UnmarshalYAML(in)
	if err != nil {
		t.Fatal(err)
	}
	want := `<a href="#" class="x">see <b>here</b></a>`
	if got := Render(s); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
