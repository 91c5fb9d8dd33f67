package shorthand

import "strings"

// Render serializes a shorthand to an HTML-like markup string without
// constructing any live node. No escaping is performed on text or attribute
// values; callers needing safety must escape upstream.
//
// The self-closing rule: an Element whose Content is nil renders as
// <tag/>; present-but-empty content renders as <tag></tag>. Presence of the
// content key decides, never its length.
func Render(s Shorthand) string {
	var b strings.Builder
	render(&b, s, nil)
	return b.String()
}

// RenderColors is Render with ANSI colors for terminal display.
func RenderColors(s Shorthand, colors *Colors) string {
	var b strings.Builder
	render(&b, s, colors)
	return b.String()
}

func render(b *strings.Builder, s Shorthand, colors *Colors) {
	switch x := s.(type) {
	case Text:
		b.WriteString(colors.colorize(TextColor, string(x)))
	case *Element:
		b.WriteString(colors.colorize(SepColor, "<"))
		b.WriteString(colors.colorize(TagColor, x.Tag))
		renderAttrs(b, x, colors)
		if x.Content == nil {
			b.WriteString(colors.colorize(SepColor, "/>"))
			return
		}
		b.WriteString(colors.colorize(SepColor, ">"))
		for _, c := range x.Content {
			render(b, c, colors)
		}
		b.WriteString(colors.colorize(SepColor, "</"))
		b.WriteString(colors.colorize(TagColor, x.Tag))
		b.WriteString(colors.colorize(SepColor, ">"))
	case *Attribute:
		renderAttr(b, x.Name, strOrEmpty(x.Value), colors)
	case *CData:
		b.WriteString(colors.colorize(SepColor, "<![CDATA[ "))
		b.WriteString(colors.colorize(CDataColor, x.Data))
		b.WriteString(colors.colorize(SepColor, " ]]>"))
	case *Comment:
		b.WriteString(colors.colorize(SepColor, "<!--"))
		b.WriteString(colors.colorize(CommentColor, x.Text))
		b.WriteString(colors.colorize(SepColor, "-->"))
	case *ProcessingInstruction:
		// no native markup form in this model; aliased to comment syntax
		b.WriteString(colors.colorize(SepColor, "<!--"))
		b.WriteString(colors.colorize(CommentColor, x.Target+" "+x.Data))
		b.WriteString(colors.colorize(SepColor, "-->"))
	case *Fragment:
		for _, c := range x.Content {
			render(b, c, colors)
		}
	}
}

func renderAttrs(b *strings.Builder, e *Element, colors *Colors) {
	for _, name := range e.Attributes.Names() {
		v, _ := e.Attributes.Get(name)
		b.WriteString(" ")
		renderAttr(b, name, v, colors)
	}
}

func renderAttr(b *strings.Builder, name, value string, colors *Colors) {
	b.WriteString(colors.colorize(AttrNameColor, name))
	b.WriteString(colors.colorize(SepColor, `="`))
	b.WriteString(colors.colorize(AttrValueColor, value))
	b.WriteString(colors.colorize(SepColor, `"`))
}
