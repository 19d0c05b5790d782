package xmlight

// escapePCData writes s to w with text-content escaping applied. The five
// reserved characters become entities, except that an ampersand opening a
// numeric character reference ("&#" followed by a digit, or by the
// hexadecimal marker 'x', with room for the shortest terminated reference)
// is passed through untouched so that text already carrying "&#...;"
// sequences is not double-escaped. The terminating ';' is deliberately not
// validated; the look-ahead alone decides.
func escapePCData(w Sink, s string) error {
	for i := 0; i < len(s); i++ {
		var err error
		switch c := s[i]; c {
		case '>':
			err = writeString(w, "&gt;")
		case '<':
			err = writeString(w, "&lt;")
		case '\'':
			err = writeString(w, "&apos;")
		case '"':
			err = writeString(w, "&quot;")
		case '&':
			if len(s)-i-1 >= 3 && s[i+1] == '#' && (isDigit(s[i+2]) || s[i+2] == 'x') {
				err = w.WriteByte('&')
			} else {
				err = writeString(w, "&amp;")
			}
		default:
			err = w.WriteByte(c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// escapeAttr writes an attribute value to w. Only the double quote is
// escaped; '&', '<' and the rest are emitted verbatim. This is narrower
// than text escaping and can yield output that is not strictly well-formed
// for values containing '&' or '<'. The behavior is intentional and is
// pinned down by the test suite; see the package documentation.
func escapeAttr(w Sink, s string) error {
	for i := 0; i < len(s); i++ {
		var err error
		if c := s[i]; c == '"' {
			err = writeString(w, "&quot;")
		} else {
			err = w.WriteByte(c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
