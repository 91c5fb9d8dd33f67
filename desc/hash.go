package desc

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural fingerprint of the description. Equal
// descriptions hash equal within a process; attribute order does not affect
// the hash, child order does. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("desc: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.Kind))
	h.WriteString(n.Name)
	if n.Value != nil {
		h.WriteByte(1)
		h.WriteString(*n.Value)
	} else {
		h.WriteByte(0)
	}

	var b [8]byte
	if n.Attributes != nil {
		// combine per-attribute hashes with xor so order drops out
		var acc uint64
		for _, name := range n.Attributes.Names() {
			var ah maphash.Hash
			ah.SetSeed(hashSeed)
			ah.WriteString(name)
			ah.WriteByte('=')
			v, _ := n.Attributes.Get(name)
			ah.WriteString(v)
			acc ^= ah.Sum64()
		}
		binary.LittleEndian.PutUint64(b[:], acc)
		h.Write(b[:])
	}
	for _, c := range n.Children {
		binary.LittleEndian.PutUint64(b[:], c.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}
