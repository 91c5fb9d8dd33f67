package shorthand

import "github.com/treewire/go-treewire/desc"

// FromDescription compacts a description to its shorthand form. Document
// and DocumentType descriptions, and elements without a name, have no
// shorthand and yield nothing. Children that convert to nothing are
// skipped; the content sequence exists whenever the description carried a
// children sequence, even if every child was skipped.
func FromDescription(d *desc.Node) (Shorthand, bool) {
	switch d.Kind {
	case desc.TextKind:
		return Text(strOrEmpty(d.Value)), true
	case desc.ElementKind:
		if d.Name == "" {
			return nil, false
		}
		el := &Element{Tag: d.Name}
		if d.Attributes.Len() > 0 {
			el.Attributes = d.Attributes.Clone()
		}
		el.Content = contentFromChildren(d.Children)
		return el, true
	case desc.AttributeKind:
		if d.Name == "" {
			return nil, false
		}
		a := &Attribute{Name: d.Name}
		if d.Value != nil {
			v := *d.Value
			a.Value = &v
		}
		return a, true
	case desc.CDataSectionKind:
		return &CData{Data: strOrEmpty(d.Value)}, true
	case desc.CommentKind:
		return &Comment{Text: strOrEmpty(d.Value)}, true
	case desc.ProcessingInstructionKind:
		if d.Name == "" {
			return nil, false
		}
		return &ProcessingInstruction{Target: d.Name, Data: strOrEmpty(d.Value)}, true
	case desc.DocumentFragmentKind:
		return &Fragment{Content: contentFromChildren(d.Children)}, true
	}
	return nil, false
}

func contentFromChildren(children []*desc.Node) []Shorthand {
	if children == nil {
		return nil
	}
	content := make([]Shorthand, 0, len(children))
	for _, c := range children {
		s, ok := FromDescription(c)
		if !ok {
			continue
		}
		content = append(content, s)
	}
	return content
}

// ToDescription lowers a shorthand back to the canonical description.
func ToDescription(s Shorthand) *desc.Node {
	switch x := s.(type) {
	case Text:
		return desc.Text(string(x))
	case *Element:
		d := &desc.Node{Kind: desc.ElementKind, Name: x.Tag}
		if x.Attributes != nil {
			d.Attributes = x.Attributes.Clone()
		}
		d.Children = childrenFromContent(x.Content)
		return d
	case *Attribute:
		var v *string
		if x.Value != nil {
			vv := *x.Value
			v = &vv
		}
		return desc.Attribute(x.Name, v)
	case *CData:
		return desc.CData(x.Data)
	case *Comment:
		return desc.Comment(x.Text)
	case *ProcessingInstruction:
		return desc.ProcessingInstruction(x.Target, x.Data)
	case *Fragment:
		d := &desc.Node{Kind: desc.DocumentFragmentKind, Name: desc.DocumentFragmentName}
		d.Children = childrenFromContent(x.Content)
		return d
	}
	return nil
}

func childrenFromContent(content []Shorthand) []*desc.Node {
	if content == nil {
		return nil
	}
	children := make([]*desc.Node, 0, len(content))
	for _, c := range content {
		if d := ToDescription(c); d != nil {
			children = append(children, d)
		}
	}
	return children
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
