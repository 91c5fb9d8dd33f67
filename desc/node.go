package desc

// Node is the canonical, JSON-safe description of one tree node. It is a
// tagged variant over Kind: which fields are meaningful depends on Kind,
// and the JSON codec enforces that shape.
//
//   - Name is set for every kind; kinds with a fixed name use the reserved
//     sentinel (#text, #comment, ...), Element/Attribute/ProcessingInstruction
//     carry the tag, attribute name and target respectively.
//   - Value holds character data for Attribute, Text, CDataSection,
//     ProcessingInstruction and Comment. nil means no value.
//   - Attributes is non-nil only for Element descriptions.
//   - Children is nil when the described node had no children; the nil /
//     empty distinction is part of the round-trip contract.
//
// Descriptions are value objects: constructed fresh per conversion and never
// mutated after construction.
type Node struct {
	Kind       Kind
	Name       string
	Value      *string
	Attributes *Attrs
	Children   []*Node
}

func strptr(s string) *string { return &s }

func Text(value string) *Node {
	return &Node{Kind: TextKind, Name: TextName, Value: strptr(value)}
}

func CData(value string) *Node {
	return &Node{Kind: CDataSectionKind, Name: CDataSectionName, Value: strptr(value)}
}

func Comment(value string) *Node {
	return &Node{Kind: CommentKind, Name: CommentName, Value: strptr(value)}
}

func ProcessingInstruction(target, data string) *Node {
	return &Node{Kind: ProcessingInstructionKind, Name: target, Value: strptr(data)}
}

func Attribute(name string, value *string) *Node {
	return &Node{Kind: AttributeKind, Name: name, Value: value}
}

// Element builds an element description. attrs may be nil. Children are
// attached only if at least one is given, keeping the nil / empty contract.
func Element(name string, attrs *Attrs, children ...*Node) *Node {
	n := &Node{Kind: ElementKind, Name: name, Attributes: attrs}
	if len(children) > 0 {
		n.Children = children
	}
	return n
}

func Fragment(children ...*Node) *Node {
	n := &Node{Kind: DocumentFragmentKind, Name: DocumentFragmentName}
	if len(children) > 0 {
		n.Children = children
	}
	return n
}

func Document(children ...*Node) *Node {
	n := &Node{Kind: DocumentKind, Name: DocumentName}
	if len(children) > 0 {
		n.Children = children
	}
	return n
}

func DocumentType(name string) *Node {
	return &Node{Kind: DocumentTypeKind, Name: name}
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		Kind: n.Kind,
		Name: n.Name,
	}
	if n.Value != nil {
		v := *n.Value
		res.Value = &v
	}
	res.Attributes = n.Attributes.Clone()
	if n.Children != nil {
		res.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			res.Children[i] = c.Clone()
		}
	}
	return res
}

// Visit walks the description depth first. f is called with isPost false
// before descending and true after; returning dive=false skips children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Equal compares two descriptions structurally: attribute order is ignored,
// the nil / empty children distinction is not (both sides nil or both
// non-nil of equal shape).
func (n *Node) Equal(o *Node) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	if n.Kind != o.Kind || n.Name != o.Name {
		return false
	}
	if (n.Value == nil) != (o.Value == nil) {
		return false
	}
	if n.Value != nil && *n.Value != *o.Value {
		return false
	}
	if (n.Attributes == nil) != (o.Attributes == nil) {
		return false
	}
	if n.Attributes != nil && !n.Attributes.Equal(o.Attributes) {
		return false
	}
	if (n.Children == nil) != (o.Children == nil) {
		return false
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
