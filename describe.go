package treewire

import (
	"github.com/treewire/go-treewire/desc"
	"github.com/treewire/go-treewire/host"
)

// Describe captures a live node as a canonical description. The result is a
// fresh value object with no tie to the live tree.
func Describe(n host.Node) *desc.Node {
	d := &desc.Node{
		Kind: n.Kind(),
		Name: n.Name(),
	}
	if v, ok := n.Value(); ok {
		d.Value = &v
	}
	if attrs, ok := n.Attributes(); ok {
		a := desc.NewAttrs()
		for _, name := range attrs.Names() {
			v, _ := attrs.Get(name)
			a.Set(name, v)
		}
		d.Attributes = a
	}
	if children := DescribeList(n.Children()); len(children) > 0 {
		d.Children = children
	}
	return d
}

// DescribeList maps Describe over an indexed child collection, preserving
// order. Empty input yields an empty sequence; the caller decides whether
// to attach it.
func DescribeList(list host.NodeList) []*desc.Node {
	n := list.Len()
	res := make([]*desc.Node, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, Describe(list.Item(i)))
	}
	return res
}
