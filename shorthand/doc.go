// Package shorthand implements the compact alternate form of node
// descriptions: strings for text nodes and small tagged objects for every
// other creatable kind.
//
// On the wire the form is discriminated by key presence, not by an explicit
// type field; Decode applies the checks in a fixed order (Element,
// Attribute, CData, ProcessingInstruction, Comment, then the Fragment
// catch-all). The same discrimination backs Validate, the loose shape check
// for untrusted input, and Unmarshal / UnmarshalYAML, the order-preserving
// document loaders.
//
// Render serializes a shorthand to markup text directly, with no live tree
// involved and no escaping.
package shorthand
