package xmlight

import "strings"

// parser assembles lexer items into a document tree.
type parser struct {
	lx *lexer
}

// Parse reads a complete document from data and returns its root node.
// A document holds exactly one root node; content after it is reported as
// an "End of file expected" diagnostic. Errors returned by Parse are
// *ParseError values carrying the failing span.
func Parse(data []byte, opts ...Option) (Node, error) {
	return ParseString(string(data), opts...)
}

// ParseString is Parse for a string source.
func ParseString(src string, opts ...Option) (Node, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	p := &parser{lx: newLexer(src, o.preserveWhitespace)}
	root, err := p.parseDocument()
	if err != nil {
		return nil, err
	}
	return root, nil
}

func (p *parser) parseDocument() (Node, *ParseError) {
	it, err := p.lx.lex()
	if err != nil {
		return nil, err
	}

	var root Node
	switch it.kind {
	case itemEOF, itemClose:
		return nil, p.lx.errAt(NodeExpected, it.start)
	case itemPCData:
		root = PCData(it.text)
	case itemOpen:
		el, err := p.parseElement(it)
		if err != nil {
			return nil, err
		}
		root = el
	}

	it, err = p.lx.lex()
	if err != nil {
		return nil, err
	}
	if it.kind != itemEOF {
		return nil, p.lx.errAt(EOFExpected, it.start)
	}
	return root, nil
}

// parseElement is entered with the element's opening tag already lexed and
// consumes items until the matching close tag. Tag names are compared
// case-insensitively; a mismatched or missing close tag is reported against
// the element that is still open.
func (p *parser) parseElement(open item) (*Element, *ParseError) {
	el := &Element{Name: open.text, Attrs: open.attrs}
	if open.selfClosing {
		return el, nil
	}
	for {
		it, err := p.lx.lex()
		if err != nil {
			return nil, err
		}
		switch it.kind {
		case itemEOF:
			perr := p.lx.errAt(EndOfTagExpected, it.start)
			perr.Tag = el.Name
			return nil, perr
		case itemClose:
			if !strings.EqualFold(it.text, el.Name) {
				perr := p.lx.errAt(EndOfTagExpected, it.start)
				perr.Tag = el.Name
				return nil, perr
			}
			return el, nil
		case itemPCData:
			el.Children = append(el.Children, PCData(it.text))
		case itemOpen:
			child, err := p.parseElement(it)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		}
	}
}
