// Package memtree is the default in-memory host tree. It implements the
// full set of node kinds with no document semantics beyond what the core
// needs: a kind, a name, character data, an ordered child list and, for
// elements, a deduplicating attribute collection.
package memtree

import (
	"github.com/treewire/go-treewire/desc"
	"github.com/treewire/go-treewire/host"
)

type node struct {
	kind     desc.Kind
	name     string
	value    string
	hasValue bool
	children childList
	attrs    *attrList
}

var _ host.Node = (*node)(nil)

func (n *node) Kind() desc.Kind { return n.kind }
func (n *node) Name() string    { return n.name }

func (n *node) Value() (string, bool) {
	return n.value, n.hasValue
}

func (n *node) SetValue(v string) {
	if !n.hasValue {
		return
	}
	n.value = v
}

func (n *node) Children() host.NodeList { return &n.children }

func (n *node) Attributes() (host.AttrList, bool) {
	if n.attrs == nil {
		return nil, false
	}
	return n.attrs, true
}

type childList struct {
	kind  desc.Kind
	nodes []host.Node
}

var _ host.NodeList = (*childList)(nil)

func (l *childList) Len() int { return len(l.nodes) }

func (l *childList) Item(i int) host.Node {
	if i < 0 || i >= len(l.nodes) {
		return nil
	}
	return l.nodes[i]
}

func (l *childList) Append(n host.Node) {
	if l.kind.IsLeaf() || n == nil {
		return
	}
	l.nodes = append(l.nodes, n)
}

func (l *childList) RemoveLast() {
	if len(l.nodes) == 0 {
		return
	}
	l.nodes[len(l.nodes)-1] = nil
	l.nodes = l.nodes[:len(l.nodes)-1]
}

func (l *childList) Replace(i int, n host.Node) {
	if i < 0 || i >= len(l.nodes) || n == nil {
		return
	}
	l.nodes[i] = n
}

type attrList struct {
	attrs desc.Attrs
}

var _ host.AttrList = (*attrList)(nil)

func (a *attrList) Len() int                      { return a.attrs.Len() }
func (a *attrList) Get(name string) (string, bool) { return a.attrs.Get(name) }
func (a *attrList) Set(name, value string)         { a.attrs.Set(name, value) }
func (a *attrList) Remove(name string)             { a.attrs.Remove(name) }
func (a *attrList) Names() []string                { return a.attrs.Names() }

// Factory creates memtree nodes.
type Factory struct{}

var _ host.Factory = Factory{}

func NewFactory() Factory { return Factory{} }

func newNode(kind desc.Kind, name string, hasValue bool) *node {
	n := &node{kind: kind, name: name, hasValue: hasValue}
	n.children.kind = kind
	if kind == desc.ElementKind {
		n.attrs = &attrList{}
	}
	return n
}

func (Factory) CreateElement(tag string) host.Node {
	return newNode(desc.ElementKind, tag, false)
}

func (Factory) CreateText(data string) host.Node {
	n := newNode(desc.TextKind, desc.TextName, true)
	n.value = data
	return n
}

func (Factory) CreateComment(data string) host.Node {
	n := newNode(desc.CommentKind, desc.CommentName, true)
	n.value = data
	return n
}

func (Factory) CreateCDataSection(data string) host.Node {
	n := newNode(desc.CDataSectionKind, desc.CDataSectionName, true)
	n.value = data
	return n
}

func (Factory) CreateProcessingInstruction(target, data string) host.Node {
	n := newNode(desc.ProcessingInstructionKind, target, true)
	n.value = data
	return n
}

func (Factory) CreateAttribute(name string) host.Node {
	return newNode(desc.AttributeKind, name, true)
}

func (Factory) CreateDocumentFragment() host.Node {
	return newNode(desc.DocumentFragmentKind, desc.DocumentFragmentName, false)
}

// CreateDocument is not part of the host.Factory capability (documents are
// never materialized from descriptions) but is handy for building roots.
func (Factory) CreateDocument() host.Node {
	return newNode(desc.DocumentKind, desc.DocumentName, false)
}
