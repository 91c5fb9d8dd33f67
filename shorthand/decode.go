package shorthand

import (
	"github.com/goccy/go-yaml"

	"github.com/treewire/go-treewire/desc"
)

// object is a decoded JSON/YAML object with its key order intact.
type object struct {
	keys []string
	vals map[string]any
}

func newObject() *object {
	return &object{vals: map[string]any{}}
}

func (o *object) set(k string, v any) {
	if _, ok := o.vals[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
}

func (o *object) has(k string) bool {
	_, ok := o.vals[k]
	return ok
}

// asObject views a decoded value as an ordered object. Plain Go maps are
// accepted with arbitrary order; yaml.MapSlice (goccy ordered decoding)
// keeps document order.
func asObject(v any) (*object, bool) {
	switch x := v.(type) {
	case *object:
		return x, true
	case map[string]any:
		o := newObject()
		for k, vv := range x {
			o.set(k, vv)
		}
		return o, true
	case map[string]string:
		o := newObject()
		for k, vv := range x {
			o.set(k, vv)
		}
		return o, true
	case yaml.MapSlice:
		o := newObject()
		for _, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				return nil, false
			}
			o.set(k, item.Value)
		}
		return o, true
	}
	return nil, false
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Decode lowers a loosely-typed value (as produced by JSON or YAML
// unmarshaling into any) to a Shorthand. Strings always decode to Text.
// Objects are discriminated by key presence in the fixed order
// Element, Attribute, CData, ProcessingInstruction, Comment, Fragment; the
// Attribute check requires both name and value, every other check a single
// key, and Fragment is the catch-all. The order is load-bearing: an object
// carrying both tag and name/value keys is an Element.
//
// Values that are neither strings nor objects decode to nothing.
func Decode(v any) (Shorthand, bool) {
	if s, ok := v.(Shorthand); ok {
		return s, true
	}
	if s, ok := asString(v); ok {
		return Text(s), true
	}
	o, ok := asObject(v)
	if !ok {
		return nil, false
	}
	switch {
	case o.has("tag"):
		return decodeElement(o)
	case o.has("name") && o.has("value"):
		return decodeAttribute(o)
	case o.has("cData"):
		s, ok := asString(o.vals["cData"])
		if !ok {
			return nil, false
		}
		return &CData{Data: s}, true
	case o.has("target"):
		return decodePI(o)
	case o.has("comment"):
		s, ok := asString(o.vals["comment"])
		if !ok {
			return nil, false
		}
		return &Comment{Text: s}, true
	default:
		return decodeFragment(o)
	}
}

// Validate is the loose runtime shape check for untrusted input: it decodes
// with the same discrimination as Decode but only accepts the Fragment
// catch-all for objects with zero keys or a single content key. It is not a
// schema validator; nested content is checked only as far as Decode reaches.
func Validate(v any) (Shorthand, bool) {
	o, isObj := asObject(v)
	if isObj {
		known := o.has("tag") ||
			(o.has("name") && o.has("value")) ||
			o.has("cData") || o.has("target") || o.has("comment")
		if !known {
			fragOK := len(o.keys) == 0 || (len(o.keys) == 1 && o.keys[0] == "content")
			if !fragOK {
				return nil, false
			}
		}
	}
	return Decode(v)
}

func decodeElement(o *object) (Shorthand, bool) {
	tag, ok := asString(o.vals["tag"])
	if !ok {
		return nil, false
	}
	el := &Element{Tag: tag}
	if av, ok := o.vals["attributes"]; ok && av != nil {
		ao, ok := asObject(av)
		if !ok {
			return nil, false
		}
		attrs := desc.NewAttrs()
		for _, k := range ao.keys {
			s, ok := asString(ao.vals[k])
			if !ok {
				return nil, false
			}
			attrs.Set(k, s)
		}
		el.Attributes = attrs
	}
	content, ok := decodeContent(o)
	if !ok {
		return nil, false
	}
	el.Content = content
	return el, true
}

func decodeAttribute(o *object) (Shorthand, bool) {
	name, ok := asString(o.vals["name"])
	if !ok {
		return nil, false
	}
	a := &Attribute{Name: name}
	if v := o.vals["value"]; v != nil {
		s, ok := asString(v)
		if !ok {
			return nil, false
		}
		a.Value = &s
	}
	return a, true
}

func decodePI(o *object) (Shorthand, bool) {
	target, ok := asString(o.vals["target"])
	if !ok {
		return nil, false
	}
	data, _ := asString(o.vals["data"])
	return &ProcessingInstruction{Target: target, Data: data}, true
}

func decodeFragment(o *object) (Shorthand, bool) {
	content, ok := decodeContent(o)
	if !ok {
		return nil, false
	}
	return &Fragment{Content: content}, true
}

// decodeContent lowers the content key. Items that decode to nothing are
// skipped. Returns (nil, true) when the key is absent.
func decodeContent(o *object) ([]Shorthand, bool) {
	cv, ok := o.vals["content"]
	if !ok {
		return nil, true
	}
	items, ok := cv.([]any)
	if !ok {
		if cv == nil {
			return []Shorthand{}, true
		}
		return nil, false
	}
	content := make([]Shorthand, 0, len(items))
	for _, item := range items {
		s, ok := Decode(item)
		if !ok {
			continue
		}
		content = append(content, s)
	}
	return content, true
}
