// Package desc defines the canonical description of live tree nodes.
//
// # Overview
//
// A description is a JSON-safe snapshot of one node: its kind, name, value,
// attributes and children. Descriptions are plain value objects with no
// connection to the live tree they were captured from; they can be
// serialized, transmitted, patched and later reconciled against a live tree
// (see the root treewire package).
//
// The description works as a recursive tagged variant over Kind: which
// fields carry meaning depends on the kind, and the JSON codec rejects
// shapes that are not kind-consistent (for example a Text description with
// attributes).
//
// # Kinds
//
// Kind codes mirror the standard document-node taxonomy and are part of the
// wire contract: Element=1, Attribute=2, Text=3, CDataSection=4,
// ProcessingInstruction=7, Comment=8, Document=9, DocumentType=10,
// DocumentFragment=11. Persisted descriptions are only valid under this
// exact numbering.
//
// # Creating descriptions
//
// Use the constructor functions:
//
//	txt := desc.Text("hello")
//	el := desc.Element("p", desc.AttrsFrom("class", "intro"), txt)
//	frag := desc.Fragment(el)
//
// # Children
//
// Children is nil, never an empty slice, when the described node had no
// children. The distinction is preserved through JSON and matters for
// round-tripping captured trees.
package desc
