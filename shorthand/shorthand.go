package shorthand

import "github.com/treewire/go-treewire/desc"

// Shorthand is the compact, kind-discriminated alternate form of a
// description. One variant exists per kind creatable through the model;
// Document and DocumentType have no shorthand.
//
// On the wire a Text is a bare string and every other variant is an object
// discriminated by key presence, checked in a fixed order (see Decode).
type Shorthand interface {
	shorthand()
}

// Text is a text node: a bare string on the wire.
type Text string

// Element is `{tag, attributes?, content?}`. Attributes is omitted from the
// wire when empty. Content nil means the content key is absent, which is
// distinct from present-and-empty: the markup renderer emits a self-closing
// tag only when Content is nil.
type Element struct {
	Tag        string
	Attributes *desc.Attrs
	Content    []Shorthand
}

// Attribute is `{name, value}` with a nullable value.
type Attribute struct {
	Name  string
	Value *string
}

// CData is `{cData}`.
type CData struct {
	Data string
}

// Comment is `{comment}`.
type Comment struct {
	Text string
}

// ProcessingInstruction is `{target, data}`.
type ProcessingInstruction struct {
	Target string
	Data   string
}

// Fragment is `{content?}` or the empty object.
type Fragment struct {
	Content []Shorthand
}

func (Text) shorthand()                   {}
func (*Element) shorthand()               {}
func (*Attribute) shorthand()             {}
func (*CData) shorthand()                 {}
func (*Comment) shorthand()               {}
func (*ProcessingInstruction) shorthand() {}
func (*Fragment) shorthand()              {}
