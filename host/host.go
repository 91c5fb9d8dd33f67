// Package host declares the capability interface the core requires from a
// live tree implementation. The core never constructs concrete tree types
// itself: it reads nodes through Node and creates them through a Factory.
//
// Whether a node is element-like is a capability check (does Attributes
// report ok) rather than a type switch on the implementation.
package host

import "github.com/treewire/go-treewire/desc"

// Node is one live tree node.
type Node interface {
	// Kind returns the node's kind code.
	Kind() desc.Kind
	// Name returns the node name: tag for elements, attribute name for
	// attributes, target for processing instructions, and the reserved
	// sentinel (#text, #comment, ...) for fixed-name kinds.
	Name() string
	// Value returns the node's character data. ok is false for kinds that
	// carry no value (elements, documents, fragments).
	Value() (value string, ok bool)
	// SetValue overwrites the character data. No-op for valueless kinds.
	SetValue(value string)
	// Children returns the node's indexed child collection. Never nil;
	// leaf kinds return an empty, append-rejecting list.
	Children() NodeList
	// Attributes returns the node's attribute collection. ok is false for
	// every kind but Element.
	Attributes() (attrs AttrList, ok bool)
}

// NodeList is an iterable, indexed child collection.
type NodeList interface {
	Len() int
	// Item returns the child at index i, or nil if out of range.
	Item(i int) Node
	// Append adds a node at the end of the list.
	Append(n Node)
	// RemoveLast removes the final node. No-op on an empty list.
	RemoveLast()
	// Replace substitutes the node at index i. No-op if out of range.
	Replace(i int, n Node)
}

// AttrList is an iterable, named attribute collection. Implementations
// deduplicate by name: setting an existing name overwrites.
type AttrList interface {
	Len() int
	Get(name string) (value string, ok bool)
	Set(name, value string)
	Remove(name string)
	// Names returns attribute names in collection order.
	Names() []string
}

// Factory creates nodes, one constructor per creatable kind.
type Factory interface {
	CreateElement(tag string) Node
	CreateText(data string) Node
	CreateComment(data string) Node
	CreateCDataSection(data string) Node
	CreateProcessingInstruction(target, data string) Node
	CreateAttribute(name string) Node
	CreateDocumentFragment() Node
}
