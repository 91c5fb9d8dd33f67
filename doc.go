// Package treewire maps live mutable node trees to JSON-safe descriptions
// and back, and reconciles a live tree in place toward a target description
// with minimal structural disruption.
//
// The live tree is consumed only through the capability interfaces in the
// host package; host/memtree is the default implementation and host/htmltree
// adapts golang.org/x/net/html documents. Descriptions live in the desc
// package; the compact shorthand form and its markup renderer live in the
// shorthand package.
//
// Reconciliation is positional: children are matched by index, never by key,
// so results are deterministic at the cost of re-creating shifted siblings.
// ReconcileNode reports through an explicit Result whether the node was
// patched in place, replaced by a fresh node, or dropped.
package treewire
