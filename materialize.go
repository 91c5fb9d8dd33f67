package treewire

import (
	"github.com/treewire/go-treewire/desc"
	"github.com/treewire/go-treewire/host"
)

// Materialize constructs a live node from a description using the given
// factory. It never fails loudly: a description missing a required name, a
// kind the factory cannot create, or a kind outside the creatable set yields
// (nil, false) and the caller must treat that as nothing to attach.
//
// Element descriptions get their attributes applied and their children
// materialized and appended in order. Fragment descriptions come back empty:
// appending a fragment description's children is the caller's concern.
func Materialize(f host.Factory, d *desc.Node) (host.Node, bool) {
	var n host.Node
	switch d.Kind {
	case desc.TextKind:
		n = f.CreateText(strOrEmpty(d.Value))
	case desc.CDataSectionKind:
		n = f.CreateCDataSection(strOrEmpty(d.Value))
	case desc.CommentKind:
		n = f.CreateComment(strOrEmpty(d.Value))
	case desc.ElementKind:
		if d.Name == "" {
			return nil, false
		}
		n = f.CreateElement(d.Name)
		if n == nil {
			return nil, false
		}
		if d.Attributes != nil {
			SetElementAttributes(n, d.Attributes)
		}
		children := n.Children()
		for _, c := range d.Children {
			cn, ok := Materialize(f, c)
			if !ok {
				continue
			}
			children.Append(cn)
		}
	case desc.AttributeKind:
		if d.Name == "" {
			return nil, false
		}
		n = f.CreateAttribute(d.Name)
		if n != nil && d.Value != nil {
			n.SetValue(*d.Value)
		}
	case desc.ProcessingInstructionKind:
		if d.Name == "" {
			return nil, false
		}
		n = f.CreateProcessingInstruction(d.Name, strOrEmpty(d.Value))
	case desc.DocumentFragmentKind:
		n = f.CreateDocumentFragment()
	default:
		return nil, false
	}
	if n == nil {
		return nil, false
	}
	return n, true
}

// SetElementAttributes writes each attribute in values onto the element,
// touching only attributes whose current value differs.
func SetElementAttributes(element host.Node, values *desc.Attrs) {
	attrs, ok := element.Attributes()
	if !ok {
		return
	}
	for _, name := range values.Names() {
		want, _ := values.Get(name)
		if cur, ok := attrs.Get(name); ok && cur == want {
			continue
		}
		attrs.Set(name, want)
	}
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
