package xmlight

import "strings"

// itemKind classifies the constructs the lexer hands to the parser.
type itemKind int

const (
	itemPCData itemKind = iota // character data, entities resolved
	itemOpen                   // <name attr="v"...> or <name .../>
	itemClose                  // </name>
	itemEOF
)

// item is one lexed construct. Comments, processing instructions and
// DOCTYPE declarations are consumed silently and never surface as items.
type item struct {
	kind        itemKind
	text        string // character data, or the tag name
	attrs       []Attr
	selfClosing bool
	start       mark
}

// mark remembers a point in the source so a diagnostic can report the span
// from that point to the current position.
type mark struct {
	off       int
	line      int
	lineStart int
}

// lexer scans a document byte by byte, tracking the one-based line number
// and the absolute offset of the current line start so every diagnostic
// carries a full position.
type lexer struct {
	src       string
	pos       int
	line      int
	lineStart int

	preserveWhitespace bool
}

func newLexer(src string, preserveWhitespace bool) *lexer {
	return &lexer{src: src, line: 1, preserveWhitespace: preserveWhitespace}
}

func (l *lexer) eof() bool { return l.pos >= len(l.src) }

func (l *lexer) peek() byte {
	if l.eof() {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) next() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.lineStart = l.pos
	}
	return c
}

func (l *lexer) mark() mark {
	return mark{off: l.pos, line: l.line, lineStart: l.lineStart}
}

// errAt builds a diagnostic spanning from m to the current position.
func (l *lexer) errAt(kind ErrorKind, m mark) *ParseError {
	return &ParseError{Kind: kind, Pos: Pos{Line: m.line, LineStart: m.lineStart, Min: m.off, Max: l.pos}}
}

// errHere builds a zero-width diagnostic at the current position.
func (l *lexer) errHere(kind ErrorKind) *ParseError {
	return l.errAt(kind, l.mark())
}

func (l *lexer) skipSpace() {
	for !l.eof() && isSpace(l.peek()) {
		l.next()
	}
}

// lex returns the next item. Character data is accumulated until a '<' or
// end of input; whitespace-only runs are dropped unless the lexer was built
// with preserveWhitespace.
func (l *lexer) lex() (item, *ParseError) {
	for {
		start := l.mark()
		var b strings.Builder
		onlySpace := true
		for !l.eof() && l.peek() != '<' {
			if l.peek() == '&' {
				if err := l.entity(&b); err != nil {
					return item{}, err
				}
				onlySpace = false
				continue
			}
			c := l.next()
			if !isSpace(c) {
				onlySpace = false
			}
			b.WriteByte(c)
		}
		if b.Len() > 0 && (!onlySpace || l.preserveWhitespace) {
			return item{kind: itemPCData, text: b.String(), start: start}, nil
		}
		if l.eof() {
			return item{kind: itemEOF, start: l.mark()}, nil
		}

		tagStart := l.mark()
		l.next() // consume '<'
		switch l.peek() {
		case '!':
			if err := l.skipDeclaration(tagStart); err != nil {
				return item{}, err
			}
		case '?':
			if err := l.skipInstruction(tagStart); err != nil {
				return item{}, err
			}
		case '/':
			l.next()
			name, err := l.ident()
			if err != nil {
				return item{}, err
			}
			l.skipSpace()
			if l.eof() || l.peek() != '>' {
				return item{}, l.errHere(CloseExpected)
			}
			l.next()
			return item{kind: itemClose, text: name, start: tagStart}, nil
		default:
			return l.lexOpenTag(tagStart)
		}
	}
}

// lexOpenTag is entered just after the '<' of an opening tag.
func (l *lexer) lexOpenTag(tagStart mark) (item, *ParseError) {
	name, err := l.ident()
	if err != nil {
		return item{}, err
	}
	it := item{kind: itemOpen, text: name, start: tagStart}
	for {
		l.skipSpace()
		if l.eof() {
			return item{}, l.errHere(CloseExpected)
		}
		switch l.peek() {
		case '>':
			l.next()
			return it, nil
		case '/':
			l.next()
			if l.eof() || l.peek() != '>' {
				return item{}, l.errHere(CloseExpected)
			}
			l.next()
			it.selfClosing = true
			return it, nil
		}
		if !isIdentStart(l.peek()) {
			return item{}, l.errHere(AttributeNameExpected)
		}
		attrName, err := l.ident()
		if err != nil {
			return item{}, err
		}
		l.skipSpace()
		if l.eof() || l.peek() != '=' {
			return item{}, l.errHere(AttributeValueExpected)
		}
		l.next()
		l.skipSpace()
		value, err := l.attrValue()
		if err != nil {
			return item{}, err
		}
		it.attrs = append(it.attrs, Attr{Name: attrName, Value: value})
	}
}

// attrValue reads a quoted attribute value, resolving entities.
func (l *lexer) attrValue() (string, *ParseError) {
	if l.eof() {
		return "", l.errHere(AttributeValueExpected)
	}
	quote := l.peek()
	if quote != '"' && quote != '\'' {
		return "", l.errHere(AttributeValueExpected)
	}
	start := l.mark()
	l.next()
	var b strings.Builder
	for {
		if l.eof() {
			return "", l.errAt(UnterminatedString, start)
		}
		if l.peek() == quote {
			l.next()
			return b.String(), nil
		}
		if l.peek() == '&' {
			if err := l.entity(&b); err != nil {
				return "", err
			}
			continue
		}
		b.WriteByte(l.next())
	}
}

// maxEntityLen bounds the scan for an entity terminator; the longest
// reference the lexer resolves is "&#x10FFFF;".
const maxEntityLen = 16

// entity is entered at an '&'. Named entities (amp, lt, gt, apos, quot) and
// numeric character references are resolved; an unknown but terminated
// reference is kept verbatim.
func (l *lexer) entity(b *strings.Builder) *ParseError {
	start := l.mark()
	l.next() // consume '&'
	var name strings.Builder
	for {
		if l.eof() || name.Len() > maxEntityLen {
			return l.errAt(UnterminatedEntity, start)
		}
		c := l.peek()
		if c == ';' {
			l.next()
			break
		}
		if isSpace(c) || c == '<' || c == '&' {
			return l.errAt(UnterminatedEntity, start)
		}
		name.WriteByte(l.next())
	}
	switch ref := name.String(); ref {
	case "amp":
		b.WriteByte('&')
	case "lt":
		b.WriteByte('<')
	case "gt":
		b.WriteByte('>')
	case "apos":
		b.WriteByte('\'')
	case "quot":
		b.WriteByte('"')
	default:
		if r, ok := numericRef(ref); ok {
			b.WriteRune(r)
		} else {
			b.WriteByte('&')
			b.WriteString(ref)
			b.WriteByte(';')
		}
	}
	return nil
}

// numericRef decodes "#NN" or "#xNN" into a code point.
func numericRef(ref string) (rune, bool) {
	if len(ref) < 2 || ref[0] != '#' {
		return 0, false
	}
	digits := ref[1:]
	base := 10
	if digits[0] == 'x' || digits[0] == 'X' {
		digits = digits[1:]
		base = 16
	}
	if digits == "" {
		return 0, false
	}
	var n int
	for i := 0; i < len(digits); i++ {
		d := hexDigit(digits[i])
		if d < 0 || d >= base {
			return 0, false
		}
		n = n*base + d
		if n > 0x10FFFF {
			return 0, false
		}
	}
	return rune(n), true
}

func hexDigit(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// skipDeclaration consumes "<!-- ... -->" comments and "<!...>" markup
// declarations such as DOCTYPE. Nothing is produced.
func (l *lexer) skipDeclaration(tagStart mark) *ParseError {
	l.next() // consume '!'
	if strings.HasPrefix(l.src[l.pos:], "--") {
		l.next()
		l.next()
		for {
			if l.eof() {
				return l.errAt(UnterminatedComment, tagStart)
			}
			if strings.HasPrefix(l.src[l.pos:], "-->") {
				l.next()
				l.next()
				l.next()
				return nil
			}
			l.next()
		}
	}
	// DOCTYPE and friends: skip to the matching '>', tracking nested
	// bracket groups used by internal subsets.
	depth := 0
	for {
		if l.eof() {
			return l.errAt(UnterminatedComment, tagStart)
		}
		switch l.next() {
		case '[':
			depth++
		case ']':
			depth--
		case '>':
			if depth <= 0 {
				return nil
			}
		}
	}
}

// skipInstruction consumes "<? ... ?>".
func (l *lexer) skipInstruction(tagStart mark) *ParseError {
	l.next() // consume '?'
	for {
		if l.eof() {
			return l.errAt(UnterminatedComment, tagStart)
		}
		if strings.HasPrefix(l.src[l.pos:], "?>") {
			l.next()
			l.next()
			return nil
		}
		l.next()
	}
}

// ident reads a tag or attribute identifier.
func (l *lexer) ident() (string, *ParseError) {
	if l.eof() || !isIdentStart(l.peek()) {
		return "", l.errHere(IdentExpected)
	}
	start := l.pos
	for !l.eof() && isIdentChar(l.peek()) {
		l.next()
	}
	return l.src[start:l.pos], nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isIdentStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c == ':'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '-' || c == '.'
}
