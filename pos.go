package xmlight

import "fmt"

// A Pos locates a character span within a line-numbered source. All offsets
// are absolute, zero-based character offsets into the source; the invariant
// LineStart <= Min <= Max always holds, and a zero-width span has Min == Max.
type Pos struct {
	// Line is the one-based line number the span starts on.
	Line int
	// LineStart is the absolute offset of the first character of Line.
	LineStart int
	// Min is the absolute offset of the start of the span.
	Min int
	// Max is the absolute offset of the end of the span.
	Max int
}

// Range returns the start and end of the span as columns relative to the
// start of its line.
func (p Pos) Range() (start, end int) {
	return p.Min - p.LineStart, p.Max - p.LineStart
}

// AbsRange returns the absolute start and end offsets of the span.
func (p Pos) AbsRange() (start, end int) {
	return p.Min, p.Max
}

// ErrorKind identifies a structural or lexical failure detected while
// reading a document. The set is closed; EndOfTagExpected is the only kind
// carrying a payload (the offending tag name).
type ErrorKind int

const (
	UnterminatedComment ErrorKind = iota
	UnterminatedString
	UnterminatedEntity
	IdentExpected
	CloseExpected
	NodeExpected
	AttributeNameExpected
	AttributeValueExpected
	EndOfTagExpected
	EOFExpected
)

// A ParseError is a diagnostic produced while reading a document: a message
// kind plus the position of the offending span. For EndOfTagExpected, Tag
// holds the name of the element that was not closed properly.
type ParseError struct {
	Kind ErrorKind
	Tag  string
	Pos  Pos
}

// Error renders the diagnostic with its location, e.g.
// "Ident expected line 3 character 5". A zero-width span is reported as a
// single character position, a wider span as a character range; columns are
// relative to the start of the line.
func (e *ParseError) Error() string {
	start, end := e.Pos.Range()
	if start == end {
		return fmt.Sprintf("%s line %d character %d", e.message(), e.Pos.Line, start)
	}
	return fmt.Sprintf("%s line %d characters %d-%d", e.message(), e.Pos.Line, start, end)
}

func (e *ParseError) message() string {
	switch e.Kind {
	case UnterminatedComment:
		return "Unterminated comment"
	case UnterminatedString:
		return "Unterminated string"
	case UnterminatedEntity:
		return "Unterminated entity"
	case IdentExpected:
		return "Ident expected"
	case CloseExpected:
		return "Close expected"
	case NodeExpected:
		return "Node expected"
	case AttributeNameExpected:
		return "Attribute name expected"
	case AttributeValueExpected:
		return "Attribute value expected"
	case EndOfTagExpected:
		return fmt.Sprintf("End of tag expected <%s>", e.Tag)
	case EOFExpected:
		return "End of file expected"
	default:
		return "Unknown error"
	}
}
