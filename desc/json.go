package desc

import (
	"encoding/json"
	"fmt"
)

type nodeBase struct {
	Kind       Kind    `json:"kind"`
	Name       string  `json:"name,omitempty"`
	Value      *string `json:"value,omitempty"`
	Attributes *Attrs  `json:"attributes,omitempty"`
	Children   []*Node `json:"children,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	base := &nodeBase{
		Kind:       n.Kind,
		Name:       n.Name,
		Value:      n.Value,
		Attributes: n.Attributes,
		Children:   n.Children,
	}
	d, err := json.Marshal(base)
	if err != nil || n.Children == nil || len(n.Children) > 0 {
		return d, err
	}
	// omitempty folds a present-but-empty child list away; splice it back in
	// so the nil / empty distinction survives the wire.
	return append(d[:len(d)-1], `,"children":[]}`...), nil
}

// UnmarshalJSON decodes a description from its wire form, checking that the
// shape is kind-consistent: attributes only on elements, values only on
// kinds that carry character data, children only on non-leaf kinds.
func (n *Node) UnmarshalJSON(d []byte) error {
	tmp := &nodeBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	if !validKind(tmp.Kind) {
		return fmt.Errorf("%w: kind code %d", ErrBadKind, int(tmp.Kind))
	}
	if tmp.Attributes != nil && tmp.Kind != ElementKind {
		return fmt.Errorf("%w: attributes on %s description", ErrBadShape, tmp.Kind)
	}
	if tmp.Value != nil && !tmp.Kind.HasValue() {
		return fmt.Errorf("%w: value on %s description", ErrBadShape, tmp.Kind)
	}
	if tmp.Children != nil && tmp.Kind.IsLeaf() {
		return fmt.Errorf("%w: children on %s description", ErrBadShape, tmp.Kind)
	}
	if fixed := tmp.Kind.FixedName(); fixed != "" && tmp.Name != "" && tmp.Name != fixed {
		return fmt.Errorf("%w: %s description named %q", ErrBadShape, tmp.Kind, tmp.Name)
	}
	n.Kind = tmp.Kind
	n.Name = tmp.Name
	if n.Name == "" {
		n.Name = tmp.Kind.FixedName()
	}
	n.Value = tmp.Value
	n.Attributes = tmp.Attributes
	n.Children = tmp.Children
	return nil
}

// Kind codes travel as integers on the wire; the textual form from
// MarshalText is only for debug output.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(k))
}

func (k *Kind) UnmarshalJSON(d []byte) error {
	var code int
	if err := json.Unmarshal(d, &code); err != nil {
		return err
	}
	*k = Kind(code)
	return nil
}
