package treewire

import (
	"github.com/treewire/go-treewire/debug"
	"github.com/treewire/go-treewire/desc"
	"github.com/treewire/go-treewire/host"
)

// AttributesMatch reports whether the live attribute collection holds
// exactly the required set: every required name present with an equal value
// and no extra live attributes. This is strict equality, not a subset check.
func AttributesMatch(live host.AttrList, required *desc.Attrs) bool {
	matched := 0
	for _, name := range required.Names() {
		want, _ := required.Get(name)
		got, ok := live.Get(name)
		if !ok || got != want {
			return false
		}
		matched++
	}
	return live.Len() == matched
}

// NodeMatches reports whether a live node structurally satisfies a
// description. Checks short-circuit in order: kind, name, value, attributes,
// children.
func NodeMatches(n host.Node, d *desc.Node) bool {
	if debug.Match() {
		debug.Logf("match %s %q against %s %q\n", n.Kind(), n.Name(), d.Kind, d.Name)
	}
	if n.Kind() != d.Kind {
		return false
	}
	if d.Name != "" && n.Name() != d.Name {
		return false
	}
	if d.Value != nil {
		v, _ := n.Value()
		if v != *d.Value {
			return false
		}
	}
	if attrs, ok := n.Attributes(); ok {
		if !AttributesMatch(attrs, d.Attributes) {
			return false
		}
	} else if d.Attributes.Len() > 0 {
		return false
	}
	return ListMatches(n.Children(), d.Children)
}

// ListMatches compares a live child collection against descriptions by
// position: item i must match description i, and the lengths must be equal.
func ListMatches(list host.NodeList, ds []*desc.Node) bool {
	if list.Len() != len(ds) {
		return false
	}
	for i, d := range ds {
		if !NodeMatches(list.Item(i), d) {
			return false
		}
	}
	return true
}
