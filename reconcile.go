package treewire

import (
	"github.com/treewire/go-treewire/debug"
	"github.com/treewire/go-treewire/desc"
	"github.com/treewire/go-treewire/host"
)

// Outcome classifies the result of a single-node reconcile step.
type Outcome int

const (
	// PatchedInPlace means the live node was mutated to satisfy the
	// description; no structural substitution is needed.
	PatchedInPlace Outcome = iota
	// Replaced means a fresh node was materialized and the caller must
	// splice it in where the original stood.
	Replaced
	// Dropped means the description could not be materialized; nothing
	// stands at the position.
	Dropped
)

func (o Outcome) String() string {
	switch o {
	case PatchedInPlace:
		return "patched-in-place"
	case Replaced:
		return "replaced"
	case Dropped:
		return "dropped"
	}
	return "<unknown outcome>"
}

// Result is the outcome of ReconcileNode. Node is the patched original for
// PatchedInPlace, the fresh node for Replaced, and nil for Dropped.
type Result struct {
	Outcome Outcome
	Node    host.Node
}

// ApplyAttributeChanges mutates the live attribute collection until it holds
// exactly the required set, creating, updating and removing with the fewest
// touches: existing attributes with the right value are left alone.
func ApplyAttributeChanges(live host.AttrList, required *desc.Attrs) {
	for _, name := range required.Names() {
		want, _ := required.Get(name)
		if cur, ok := live.Get(name); ok && cur == want {
			continue
		}
		live.Set(name, want)
	}
	var extra []string
	for _, name := range live.Names() {
		if _, ok := required.Get(name); !ok {
			extra = append(extra, name)
		}
	}
	for _, name := range extra {
		live.Remove(name)
	}
}

// ReconcileNode patches one live node toward a description.
//
// When the live node's name equals the description's name the node is
// mutated in place: character data is overwritten if the description
// specifies a differing value, element attributes are reconciled via
// ApplyAttributeChanges, and children recurse through ReconcileChildren when
// the description specifies any.
//
// When the names differ, in-place patching is abandoned: a brand-new node is
// materialized and returned without the original being touched. Substituting
// it into the tree is the caller's job.
func ReconcileNode(f host.Factory, n host.Node, d *desc.Node) Result {
	if debug.Reconcile() {
		debug.Logf("reconcile %s %q against %s %q\n", n.Kind(), n.Name(), d.Kind, d.Name)
	}
	if n.Name() != d.Name {
		nn, ok := Materialize(f, d)
		if !ok {
			return Result{Outcome: Dropped}
		}
		return Result{Outcome: Replaced, Node: nn}
	}
	if cur, ok := n.Value(); ok {
		if d.Value != nil && *d.Value != cur {
			n.SetValue(*d.Value)
		}
	}
	if attrs, ok := n.Attributes(); ok {
		ApplyAttributeChanges(attrs, d.Attributes)
	}
	if d.Children != nil {
		ReconcileChildren(f, n, d.Children)
	}
	return Result{Outcome: PatchedInPlace, Node: n}
}

// ReconcileChildren patches a live node's children toward a description
// list. Matching is positional, never keyed: excess live children are
// trimmed from the tail, each remaining index is reconciled against the
// description at the same index, and missing positions are filled by
// materializing fresh nodes. A mid-list insertion therefore re-diffs every
// following sibling against a shifted index; that trade of diff optimality
// for determinism is part of the contract.
func ReconcileChildren(f host.Factory, n host.Node, ds []*desc.Node) {
	children := n.Children()
	for children.Len() > len(ds) {
		children.RemoveLast()
	}
	for i, d := range ds {
		child := children.Item(i)
		if child == nil {
			nn, ok := Materialize(f, d)
			if !ok {
				continue
			}
			children.Append(nn)
			continue
		}
		res := ReconcileNode(f, child, d)
		if res.Outcome == Replaced {
			children.Replace(i, res.Node)
		}
	}
}
