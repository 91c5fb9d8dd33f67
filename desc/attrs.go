package desc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Attrs is an attribute map that remembers insertion order. Order is
// irrelevant for equality but preserved for rendering, so a plain Go map
// does not suffice. Setting an existing key overwrites in place; the key
// keeps its original position.
type Attrs struct {
	names  []string
	values map[string]string
}

func NewAttrs() *Attrs {
	return &Attrs{values: map[string]string{}}
}

// AttrsFrom builds an Attrs from alternating name, value pairs. It panics
// on an odd number of arguments.
func AttrsFrom(pairs ...string) *Attrs {
	if len(pairs)%2 != 0 {
		panic("desc: AttrsFrom requires name, value pairs")
	}
	a := NewAttrs()
	for i := 0; i < len(pairs); i += 2 {
		a.Set(pairs[i], pairs[i+1])
	}
	return a
}

func (a *Attrs) Len() int {
	if a == nil {
		return 0
	}
	return len(a.names)
}

func (a *Attrs) Get(name string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.values[name]
	return v, ok
}

func (a *Attrs) Set(name, value string) {
	if a.values == nil {
		a.values = map[string]string{}
	}
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = value
}

func (a *Attrs) Remove(name string) {
	if a == nil {
		return
	}
	if _, ok := a.values[name]; !ok {
		return
	}
	delete(a.values, name)
	for i, n := range a.names {
		if n == name {
			a.names = append(a.names[:i], a.names[i+1:]...)
			break
		}
	}
}

// Names returns the attribute names in insertion order. The returned slice
// is owned by the Attrs and must not be mutated.
func (a *Attrs) Names() []string {
	if a == nil {
		return nil
	}
	return a.names
}

func (a *Attrs) Clone() *Attrs {
	if a == nil {
		return nil
	}
	res := NewAttrs()
	for _, n := range a.names {
		res.Set(n, a.values[n])
	}
	return res
}

// Equal compares two attribute sets ignoring order.
func (a *Attrs) Equal(b *Attrs) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, n := range a.Names() {
		bv, ok := b.Get(n)
		if !ok {
			return false
		}
		av, _ := a.Get(n)
		if av != bv {
			return false
		}
	}
	return true
}

// ToMap copies the attributes into a plain map, dropping order.
func (a *Attrs) ToMap() map[string]string {
	if a == nil {
		return nil
	}
	res := make(map[string]string, len(a.names))
	for _, n := range a.names {
		res[n] = a.values[n]
	}
	return res
}

func (a *Attrs) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	for i, n := range a.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		nd, err := json.Marshal(n)
		if err != nil {
			return nil, err
		}
		vd, err := json.Marshal(a.values[n])
		if err != nil {
			return nil, err
		}
		buf.Write(nd)
		buf.WriteByte(':')
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON walks the object token by token so that key order survives
// the trip through JSON.
func (a *Attrs) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("attributes: expected object, got %v", tok)
	}
	a.names = nil
	a.values = map[string]string{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("attributes: non-string key %v", keyTok)
		}
		var val string
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("attribute %q: %w", key, err)
		}
		a.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
