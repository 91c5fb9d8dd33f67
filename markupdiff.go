package treewire

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/treewire/go-treewire/shorthand"
)

// MarkupDiff renders two shorthands to markup and returns a character-level
// diff. With color true, insertions and deletions are ANSI highlighted
// (terminal output); otherwise they are wrapped in +{...} / -{...}.
func MarkupDiff(a, b shorthand.Shorthand, color bool) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(shorthand.Render(a), shorthand.Render(b), false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if color {
		return diffCfg.DiffPrettyText(diffs)
	}
	var out []byte
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			out = append(out, "+{"...)
			out = append(out, d.Text...)
			out = append(out, '}')
		case diffpatch.DiffDelete:
			out = append(out, "-{"...)
			out = append(out, d.Text...)
			out = append(out, '}')
		case diffpatch.DiffEqual:
			out = append(out, d.Text...)
		}
	}
	return string(out)
}
