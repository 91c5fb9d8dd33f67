package shorthand

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (e *Element) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	tag, err := json.Marshal(e.Tag)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"tag":`)
	buf.Write(tag)
	if e.Attributes.Len() > 0 {
		ad, err := json.Marshal(e.Attributes)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"attributes":`)
		buf.Write(ad)
	}
	if e.Content != nil {
		cd, err := marshalContent(e.Content)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"content":`)
		buf.Write(cd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (a *Attribute) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name  string  `json:"name"`
		Value *string `json:"value"`
	}{Name: a.Name, Value: a.Value})
}

func (c *CData) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Data string `json:"cData"`
	}{Data: c.Data})
}

func (c *Comment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Text string `json:"comment"`
	}{Text: c.Text})
}

func (p *ProcessingInstruction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Target string `json:"target"`
		Data   string `json:"data"`
	}{Target: p.Target, Data: p.Data})
}

func (f *Fragment) MarshalJSON() ([]byte, error) {
	if f.Content == nil {
		return []byte("{}"), nil
	}
	buf := bytes.NewBufferString(`{"content":`)
	cd, err := marshalContent(f.Content)
	if err != nil {
		return nil, err
	}
	buf.Write(cd)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalContent(content []Shorthand) ([]byte, error) {
	buf := bytes.NewBufferString("[")
	for i, c := range content {
		if i > 0 {
			buf.WriteByte(',')
		}
		d, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(d)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Unmarshal decodes a shorthand from JSON, preserving attribute order. The
// decode walks tokens by hand because encoding/json's map form forgets
// object key order.
func Unmarshal(data []byte) (Shorthand, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeAnyJSON(dec)
	if err != nil {
		return nil, err
	}
	s, ok := Decode(v)
	if !ok {
		return nil, fmt.Errorf("value %T does not qualify as any shorthand variant", v)
	}
	return s, nil
}

func decodeAnyJSON(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		// numbers stay json.Number so they do not masquerade as Text
		return tok, nil
	}
	switch delim {
	case '{':
		o := newObject()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("non-string object key %v", keyTok)
			}
			v, err := decodeAnyJSON(dec)
			if err != nil {
				return nil, err
			}
			o.set(key, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return o, nil
	case '[':
		arr := []any{}
		for dec.More() {
			v, err := decodeAnyJSON(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}
