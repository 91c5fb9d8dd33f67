package shorthand

import (
	"fmt"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrNameColor
	AttrValueColor
	TextColor
	CDataColor
	CommentColor
	SepColor
)

// Colors maps markup token classes to sprintf-style color functions.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			TagColor:       color.RGB(74, 92, 138).SprintfFunc(),
			AttrNameColor:  color.RGB(196, 96, 16).SprintfFunc(),
			AttrValueColor: color.RGB(128, 216, 236).SprintfFunc(),
			CommentColor:   color.BlueString,
			CDataColor:     color.GreenString,
			SepColor:       color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
}

func colorDefault(f string, args ...any) string {
	return fmt.Sprintf(f, args...)
}

// colorize is nil-safe: a nil Colors renders plain text.
func (c *Colors) colorize(attr ColorAttr, s string) string {
	if c == nil {
		return s
	}
	fn, ok := c.Map[attr]
	if !ok {
		fn = c.Default
	}
	if fn == nil {
		return s
	}
	return fn("%s", s)
}
