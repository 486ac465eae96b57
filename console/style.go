package console

import (
	"strings"

	"github.com/pkg/errors"
)

const ansiReset = "\x1b[0m"

var fgColors = map[string]string{
	"black": "30", "red": "31", "green": "32", "yellow": "33",
	"blue": "34", "magenta": "35", "cyan": "36", "white": "37", "default": "39",
}

var bgColors = map[string]string{
	"black": "40", "red": "41", "green": "42", "yellow": "43",
	"blue": "44", "magenta": "45", "cyan": "46", "white": "47", "default": "49",
}

var styleOptions = map[string]string{
	"bold": "1", "underscore": "4", "blink": "5", "reverse": "7", "conceal": "8",
}

// Style is a precomputed ANSI SGR sequence.
type Style struct {
	seq string
}

// NewStyle builds a style from a foreground, a background (either may be
// empty) and any of bold, underscore, blink, reverse, conceal.
func NewStyle(fg, bg string, options ...string) (Style, error) {
	var codes []string
	if fg != "" {
		c, ok := fgColors[fg]
		if !ok {
			return Style{}, errors.Errorf("console: invalid foreground color %q", fg)
		}
		codes = append(codes, c)
	}
	if bg != "" {
		c, ok := bgColors[bg]
		if !ok {
			return Style{}, errors.Errorf("console: invalid background color %q", bg)
		}
		codes = append(codes, c)
	}
	for _, o := range options {
		c, ok := styleOptions[o]
		if !ok {
			return Style{}, errors.Errorf("console: invalid style option %q", o)
		}
		codes = append(codes, c)
	}
	if len(codes) == 0 {
		return Style{}, nil
	}
	return Style{seq: "\x1b[" + strings.Join(codes, ";") + "m"}, nil
}

func mustStyle(fg, bg string, options ...string) Style {
	s, err := NewStyle(fg, bg, options...)
	if err != nil {
		panic(err)
	}
	return s
}

func defaultStyles() map[string]Style {
	return map[string]Style{
		"error":    mustStyle("white", "red"),
		"info":     mustStyle("green", ""),
		"comment":  mustStyle("yellow", ""),
		"question": mustStyle("black", "cyan"),
		"warning":  mustStyle("black", "yellow"),
	}
}

// parseInlineStyle parses "fg=yellow;bg=blue;options=bold,underscore".
func parseInlineStyle(tag string) (Style, bool) {
	var fg, bg string
	var options []string
	for _, part := range strings.Split(tag, ";") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return Style{}, false
		}
		switch k {
		case "fg":
			fg = v
		case "bg":
			bg = v
		case "options":
			options = strings.Split(v, ",")
		default:
			return Style{}, false
		}
	}
	s, err := NewStyle(fg, bg, options...)
	if err != nil {
		return Style{}, false
	}
	return s, true
}

// Formatter renders style tags. Tags that are not styles are kept as text,
// and "\<" escapes a literal '<'.
type Formatter struct {
	styles map[string]Style
}

// NewFormatter returns a formatter with the default named styles plus extra.
func NewFormatter(extra map[string]Style) *Formatter {
	styles := defaultStyles()
	for name, s := range extra {
		styles[strings.ToLower(name)] = s
	}
	return &Formatter{styles: styles}
}

func (f *Formatter) lookup(tag string) (Style, bool) {
	tag = strings.ToLower(tag)
	if s, ok := f.styles[tag]; ok {
		return s, true
	}
	return parseInlineStyle(tag)
}

type openTag struct {
	name  string
	style Style
}

// Format renders line with ANSI sequences when decorated, otherwise strips tags.
func (f *Formatter) Format(line string, decorated bool) string {
	buf := getBufWithCap(len(line) + 16)
	defer putBuf(buf)
	f.format(buf, line, decorated)
	return string(buf.b)
}

func (f *Formatter) format(buf *buffer, s string, decorated bool) {
	var stack []openTag
	for i := 0; i < len(s); {
		c := s[i]
		if c == '\\' && i+1 < len(s) && s[i+1] == '<' {
			buf.writeByte('<')
			i += 2
			continue
		}
		if c != '<' {
			j := i + 1
			for j < len(s) && s[j] != '<' && s[j] != '\\' {
				j++
			}
			buf.writeString(s[i:j])
			i = j
			continue
		}

		end := strings.IndexByte(s[i:], '>')
		if end < 0 {
			buf.writeString(s[i:])
			break
		}
		tag := s[i+1 : i+end]

		if name, closing := strings.CutPrefix(tag, "/"); closing {
			if n := len(stack); n > 0 && (name == "" || strings.EqualFold(stack[n-1].name, name)) {
				stack = stack[:n-1]
				if decorated {
					buf.writeString(ansiReset)
					for _, t := range stack {
						buf.writeString(t.style.seq)
					}
				}
				i += end + 1
				continue
			}
		} else if tag != "" {
			if st, ok := f.lookup(tag); ok {
				stack = append(stack, openTag{name: tag, style: st})
				if decorated {
					buf.writeString(st.seq)
				}
				i += end + 1
				continue
			}
		}

		// Not a style tag: keep '<' literally and continue scanning after it.
		buf.writeByte('<')
		i++
	}
	if decorated && len(stack) > 0 {
		buf.writeString(ansiReset)
	}
}
