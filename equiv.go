package treewire

// Equivalent is a deep-equality check for JSON-like values (the shapes
// encoding/json produces into any: nil, bool, float64, string, []any and
// map[string]any). It is independent of the node model and useful for
// detecting change between two snapshots without touching a live tree.
//
// Arrays compare element-wise and by length. Objects compare by symmetric
// key coverage: every key of a must match in b and b may hold no extra keys.
func Equivalent(a, b any) bool {
	switch av := a.(type) {
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equivalent(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !Equivalent(v, bvv) {
				return false
			}
		}
		return true
	default:
		switch b.(type) {
		case []any, map[string]any:
			return false
		}
		return a == b
	}
}
