// Package htmltree adapts golang.org/x/net/html node trees to the host
// capability interface, so parsed HTML documents can be described and
// reconciled like any other live tree.
//
// The html node model carries a subset of the kinds: Element, Text, Comment,
// Document and DocumentType. CDATA sections, processing instructions,
// standalone attributes and document fragments have no html representation;
// the Factory returns nil for those, which the materializer treats as
// "nothing to attach".
package htmltree

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/treewire/go-treewire/desc"
	"github.com/treewire/go-treewire/host"
)

// Node wraps one *html.Node.
type Node struct {
	HTML *html.Node
}

var _ host.Node = Node{}

// Wrap adapts an html node. Returns a zero Node if n is nil.
func Wrap(n *html.Node) Node { return Node{HTML: n} }

// Parse reads a full HTML document and wraps its root.
func Parse(r io.Reader) (Node, error) {
	n, err := html.Parse(r)
	if err != nil {
		return Node{}, err
	}
	return Wrap(n), nil
}

// ParseFragmentText parses a snippet in a div context and returns the
// wrapped parsed nodes.
func ParseFragmentText(s string) ([]Node, error) {
	ctx := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}
	ns, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Node, len(ns))
	for i, n := range ns {
		res[i] = Wrap(n)
	}
	return res, nil
}

func (n Node) Kind() desc.Kind {
	switch n.HTML.Type {
	case html.ElementNode:
		return desc.ElementKind
	case html.TextNode:
		return desc.TextKind
	case html.CommentNode:
		return desc.CommentKind
	case html.DocumentNode:
		return desc.DocumentKind
	case html.DoctypeNode:
		return desc.DocumentTypeKind
	}
	// RawNode and ErrorNode degrade to text
	return desc.TextKind
}

func (n Node) Name() string {
	switch n.HTML.Type {
	case html.ElementNode, html.DoctypeNode:
		return n.HTML.Data
	}
	return n.Kind().FixedName()
}

func (n Node) Value() (string, bool) {
	switch n.HTML.Type {
	case html.TextNode, html.CommentNode, html.RawNode:
		return n.HTML.Data, true
	}
	return "", false
}

func (n Node) SetValue(v string) {
	switch n.HTML.Type {
	case html.TextNode, html.CommentNode, html.RawNode:
		n.HTML.Data = v
	}
}

func (n Node) Children() host.NodeList { return childList{owner: n.HTML} }

func (n Node) Attributes() (host.AttrList, bool) {
	if n.HTML.Type != html.ElementNode {
		return nil, false
	}
	return attrList{owner: n.HTML}, true
}

type childList struct {
	owner *html.Node
}

var _ host.NodeList = childList{}

func (l childList) Len() int {
	n := 0
	for c := l.owner.FirstChild; c != nil; c = c.NextSibling {
		n++
	}
	return n
}

func (l childList) Item(i int) host.Node {
	if i < 0 {
		return nil
	}
	for c := l.owner.FirstChild; c != nil; c = c.NextSibling {
		if i == 0 {
			return Wrap(c)
		}
		i--
	}
	return nil
}

func (l childList) Append(n host.Node) {
	hn, ok := n.(Node)
	if !ok || hn.HTML == nil {
		return
	}
	l.owner.AppendChild(hn.HTML)
}

func (l childList) RemoveLast() {
	last := l.owner.LastChild
	if last == nil {
		return
	}
	l.owner.RemoveChild(last)
}

func (l childList) Replace(i int, n host.Node) {
	hn, ok := n.(Node)
	if !ok || hn.HTML == nil {
		return
	}
	old := l.Item(i)
	on, ok := old.(Node)
	if !ok || on.HTML == nil {
		return
	}
	l.owner.InsertBefore(hn.HTML, on.HTML)
	l.owner.RemoveChild(on.HTML)
}

type attrList struct {
	owner *html.Node
}

var _ host.AttrList = attrList{}

func (a attrList) Len() int { return len(a.Names()) }

// Get returns the last occurrence of name, mirroring the dedup rule used
// when describing live attribute collections.
func (a attrList) Get(name string) (string, bool) {
	val, ok := "", false
	for _, at := range a.owner.Attr {
		if at.Key == name {
			val, ok = at.Val, true
		}
	}
	return val, ok
}

func (a attrList) Set(name, value string) {
	for i := range a.owner.Attr {
		if a.owner.Attr[i].Key == name {
			a.owner.Attr[i].Val = value
			return
		}
	}
	a.owner.Attr = append(a.owner.Attr, html.Attribute{Key: name, Val: value})
}

func (a attrList) Remove(name string) {
	attrs := a.owner.Attr[:0]
	for _, at := range a.owner.Attr {
		if at.Key != name {
			attrs = append(attrs, at)
		}
	}
	a.owner.Attr = attrs
}

func (a attrList) Names() []string {
	seen := map[string]bool{}
	var names []string
	for _, at := range a.owner.Attr {
		if seen[at.Key] {
			continue
		}
		seen[at.Key] = true
		names = append(names, at.Key)
	}
	return names
}

// Factory creates html-backed nodes for the kinds html can represent.
type Factory struct{}

var _ host.Factory = Factory{}

func NewFactory() Factory { return Factory{} }

func (Factory) CreateElement(tag string) host.Node {
	return Wrap(&html.Node{Type: html.ElementNode, Data: tag})
}

func (Factory) CreateText(data string) host.Node {
	return Wrap(&html.Node{Type: html.TextNode, Data: data})
}

func (Factory) CreateComment(data string) host.Node {
	return Wrap(&html.Node{Type: html.CommentNode, Data: data})
}

func (Factory) CreateCDataSection(data string) host.Node { return nil }

func (Factory) CreateProcessingInstruction(target, data string) host.Node { return nil }

func (Factory) CreateAttribute(name string) host.Node { return nil }

func (Factory) CreateDocumentFragment() host.Node { return nil }
