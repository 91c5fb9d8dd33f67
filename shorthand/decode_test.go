package shorthand

import (
	"testing"

	"github.com/treewire/go-treewire/desc"
)

type decodeTest struct {
	name string
	in   any
	ok   bool
	want Shorthand
}

func obj(pairs ...any) *object {
	o := newObject()
	for i := 0; i < len(pairs); i += 2 {
		o.set(pairs[i].(string), pairs[i+1])
	}
	return o
}

func sp(s string) *string { return &s }

var decodeTests = []decodeTest{
	{
		name: "string is text",
		in:   "hello",
		ok:   true,
		want: Text("hello"),
	},
	{
		name: "tag key wins",
		in:   obj("tag", "div"),
		ok:   true,
		want: &Element{Tag: "div"},
	},
	{
		name: "tag beats name and value",
		in:   obj("name", "x", "value", "y", "tag", "div"),
		ok:   true,
		want: &Element{Tag: "div"},
	},
	{
		name: "tag beats comment",
		in:   obj("comment", "c", "tag", "p"),
		ok:   true,
		want: &Element{Tag: "p"},
	},
	{
		name: "name and value is attribute",
		in:   obj("name", "class", "value", "main"),
		ok:   true,
		want: &Attribute{Name: "class", Value: sp("main")},
	},
	{
		name: "name alone is a fragment",
		in:   obj("name", "class"),
		ok:   true,
		want: &Fragment{},
	},
	{
		name: "null value attribute",
		in:   obj("name", "disabled", "value", nil),
		ok:   true,
		want: &Attribute{Name: "disabled"},
	},
	{
		name: "cdata",
		in:   obj("cData", "raw"),
		ok:   true,
		want: &CData{Data: "raw"},
	},
	{
		name: "cdata beats target",
		in:   obj("target", "t", "cData", "raw"),
		ok:   true,
		want: &CData{Data: "raw"},
	},
	{
		name: "processing instruction",
		in:   obj("target", "xml-stylesheet", "data", "href=\"s.css\""),
		ok:   true,
		want: &ProcessingInstruction{Target: "xml-stylesheet", Data: `href="s.css"`},
	},
	{
		name: "target beats comment",
		in:   obj("comment", "c", "target", "t"),
		ok:   true,
		want: &ProcessingInstruction{Target: "t"},
	},
	{
		name: "comment",
		in:   obj("comment", "note"),
		ok:   true,
		want: &Comment{Text: "note"},
	},
	{
		name: "empty object is fragment",
		in:   obj(),
		ok:   true,
		want: &Fragment{},
	},
	{
		name: "content only object is fragment",
		in:   obj("content", []any{"a", "b"}),
		ok:   true,
		want: &Fragment{Content: []Shorthand{Text("a"), Text("b")}},
	},
	{
		name: "element with attributes and content",
		in:   obj("tag", "a", "attributes", obj("href", "#"), "content", []any{"x"}),
		ok:   true,
		want: &Element{
			Tag:        "a",
			Attributes: desc.AttrsFrom("href", "#"),
			Content:    []Shorthand{Text("x")},
		},
	},
	{
		name: "element null content is present but empty",
		in:   obj("tag", "p", "content", nil),
		ok:   true,
		want: &Element{Tag: "p", Content: []Shorthand{}},
	},
	{
		name: "element content skips undecodable items",
		in:   obj("tag", "p", "content", []any{"a", true, "b"}),
		ok:   true,
		want: &Element{Tag: "p", Content: []Shorthand{Text("a"), Text("b")}},
	},
	{
		name: "non-string tag",
		in:   obj("tag", 3),
		ok:   false,
	},
	{
		name: "number is nothing",
		in:   3.5,
		ok:   false,
	},
	{
		name: "bool is nothing",
		in:   true,
		ok:   false,
	},
	{
		name: "nil is nothing",
		in:   nil,
		ok:   false,
	},
	{
		name: "array is nothing",
		in:   []any{"a"},
		ok:   false,
	},
}

func TestDecode(t *testing.T) {
	for _, tc := range decodeTests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Decode(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v (got %#v)", ok, tc.ok, got)
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

// equalShorthand compares via the canonical description, then fixes up the
// one thing descriptions cannot see: nil vs empty attribute collections.
func equalShorthand(a, b Shorthand) bool {
	da, db := ToDescription(a), ToDescription(b)
	if da == nil || db == nil {
		return da == db
	}
	if (da.Attributes == nil) != (db.Attributes == nil) {
		return false
	}
	if da.Attributes == nil {
		da.Attributes, db.Attributes = desc.NewAttrs(), desc.NewAttrs()
	}
	return da.Equal(db)
}

type validateTest struct {
	name string
	in   any
	ok   bool
}

var validateTests = []validateTest{
	{"string", "x", true},
	{"element", obj("tag", "p"), true},
	{"attribute", obj("name", "a", "value", "b"), true},
	{"empty fragment", obj(), true},
	{"content fragment", obj("content", []any{"x"}), true},
	{"unknown key", obj("bogus", "x"), false},
	{"name without value", obj("name", "a"), false},
	{"content plus stray key", obj("content", []any{}, "extra", "y"), false},
	{"number", 3.5, false},
}

func TestValidate(t *testing.T) {
	for _, tc := range validateTests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := Validate(tc.in); ok != tc.ok {
				t.Errorf("ok = %v, want %v", ok, tc.ok)
			}
		})
	}
}
