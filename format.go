package xmlight

import (
	"io"
	"strings"
)

// A Sink receives serializer output. The serializers require exactly two
// capabilities, appending a single byte and appending a string, and issue
// their writes strictly in document order. *bytes.Buffer, *strings.Builder
// and *bufio.Writer all satisfy Sink.
type Sink interface {
	io.ByteWriter
	io.StringWriter
}

// Format selects the style of the pretty renderer. The compact renderer has
// no configuration.
type Format int

const (
	// FormatXML is the full tag-delimited pretty print.
	FormatXML Format = iota
	// FormatNoTag is the human-readable print: tags are rewritten as labels
	// and no angle brackets are emitted.
	FormatNoTag
)

const indentStep = "  "

// Write renders n to w in compact form, with no added whitespace. Childless
// elements render self-closing; adjacent text siblings are separated by a
// single space so that two character-data runs never concatenate without a
// boundary.
func Write(w Sink, n Node) error {
	switch n := n.(type) {
	case PCData:
		return escapePCData(w, string(n))
	case *Element:
		if err := writeOpenTag(w, n); err != nil {
			return err
		}
		if len(n.Children) == 0 {
			return writeString(w, "/>")
		}
		if err := w.WriteByte('>'); err != nil {
			return err
		}
		lastText := false
		for _, c := range n.Children {
			if t, ok := c.(PCData); ok {
				if lastText {
					if err := w.WriteByte(' '); err != nil {
						return err
					}
				}
				if err := escapePCData(w, string(t)); err != nil {
					return err
				}
				lastText = true
				continue
			}
			if err := Write(w, c); err != nil {
				return err
			}
			lastText = false
		}
		if err := writeString(w, "</"); err != nil {
			return err
		}
		if err := writeString(w, n.Name); err != nil {
			return err
		}
		return w.WriteByte('>')
	}
	return nil
}

// WriteFmt renders n to w in pretty form, one node per line, indented two
// spaces per nesting level.
func WriteFmt(w Sink, n Node, f Format) error {
	return writePretty(w, n, "", f)
}

func writePretty(w Sink, n Node, indent string, f Format) error {
	switch n := n.(type) {
	case PCData:
		if err := writeString(w, indent); err != nil {
			return err
		}
		if err := escapePCData(w, string(n)); err != nil {
			return err
		}
		return w.WriteByte('\n')
	case *Element:
		switch {
		case len(n.Children) == 0:
			// A childless element carries no human-meaningful content.
			if f == FormatNoTag {
				return nil
			}
			if err := writeString(w, indent); err != nil {
				return err
			}
			if err := writeOpenTag(w, n); err != nil {
				return err
			}
			return writeString(w, "/>\n")
		case isTextOnly(n):
			return writeTextLine(w, n, indent, f)
		default:
			if err := writeString(w, indent); err != nil {
				return err
			}
			if f == FormatNoTag {
				if err := writeString(w, humanLabel(n.Name)); err != nil {
					return err
				}
			} else {
				if err := writeOpenTag(w, n); err != nil {
					return err
				}
				if err := w.WriteByte('>'); err != nil {
					return err
				}
			}
			if err := w.WriteByte('\n'); err != nil {
				return err
			}
			for _, c := range n.Children {
				if err := writePretty(w, c, indent+indentStep, f); err != nil {
					return err
				}
			}
			if f == FormatNoTag {
				return nil
			}
			if err := writeString(w, indent); err != nil {
				return err
			}
			if err := writeString(w, "</"); err != nil {
				return err
			}
			if err := writeString(w, n.Name); err != nil {
				return err
			}
			return writeString(w, ">\n")
		}
	}
	return nil
}

// writeTextLine renders an element whose only child is text on a single
// line: indent, opening tag or label, the escaped text inline, and the
// closing tag in XML format.
func writeTextLine(w Sink, n *Element, indent string, f Format) error {
	if err := writeString(w, indent); err != nil {
		return err
	}
	if f == FormatNoTag {
		if err := writeString(w, humanLabel(n.Name)); err != nil {
			return err
		}
	} else {
		if err := writeOpenTag(w, n); err != nil {
			return err
		}
		if err := w.WriteByte('>'); err != nil {
			return err
		}
	}
	if err := escapePCData(w, string(n.Children[0].(PCData))); err != nil {
		return err
	}
	if f == FormatXML {
		if err := writeString(w, "</"); err != nil {
			return err
		}
		if err := writeString(w, n.Name); err != nil {
			return err
		}
		if err := w.WriteByte('>'); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// writeOpenTag writes "<name" followed by the attribute list, leaving the
// tag unterminated so the caller can choose ">" or "/>".
func writeOpenTag(w Sink, el *Element) error {
	if err := w.WriteByte('<'); err != nil {
		return err
	}
	if err := writeString(w, el.Name); err != nil {
		return err
	}
	for _, a := range el.Attrs {
		if err := w.WriteByte(' '); err != nil {
			return err
		}
		if err := writeString(w, a.Name); err != nil {
			return err
		}
		if err := writeString(w, `="`); err != nil {
			return err
		}
		if err := escapeAttr(w, a.Value); err != nil {
			return err
		}
		if err := w.WriteByte('"'); err != nil {
			return err
		}
	}
	return nil
}

// humanLabel rewrites a tag identifier as a human-readable label: the first
// letter is capitalized, underscores become spaces, and ": " is appended.
// "user_name" becomes "User name: ".
func humanLabel(tag string) string {
	var b strings.Builder
	b.Grow(len(tag) + 2)
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case i == 0 && 'a' <= c && c <= 'z':
			c -= 'a' - 'A'
		case c == '_':
			c = ' '
		}
		b.WriteByte(c)
	}
	b.WriteString(": ")
	return b.String()
}

func isTextOnly(el *Element) bool {
	if len(el.Children) != 1 {
		return false
	}
	_, ok := el.Children[0].(PCData)
	return ok
}

// ToString returns the compact rendering of n.
func ToString(n Node) string {
	var b strings.Builder
	// strings.Builder writes cannot fail.
	_ = Write(&b, n)
	return b.String()
}

// ToStringFmt returns the pretty rendering of n in the given format.
func ToStringFmt(n Node, f Format) string {
	var b strings.Builder
	_ = WriteFmt(&b, n, f)
	return b.String()
}

// ToHumanString returns the pretty rendering of n with tags suppressed.
// It is shorthand for ToStringFmt(n, FormatNoTag).
func ToHumanString(n Node) string {
	return ToStringFmt(n, FormatNoTag)
}

func writeString(w Sink, s string) error {
	_, err := w.WriteString(s)
	return err
}
