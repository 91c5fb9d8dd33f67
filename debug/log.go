package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

// Logf writes a debug trace to stderr. Arguments that know how to marshal
// themselves to JSON are expanded; everything else goes through fmt verbs
// unchanged.
func Logf(msg string, args ...any) {
	for i := range args {
		switch a := args[i].(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case json.Marshaler:
			d, err := json.Marshal(a)
			if err != nil {
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
