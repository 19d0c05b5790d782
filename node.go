package xmlight

import "strings"

// Attr is a single name="value" attribute. The attribute sequence of an
// element preserves source order, which is significant for output; lookup
// through Attribute is case-insensitive and duplicates are kept, with the
// first match winning.
type Attr struct {
	Name  string
	Value string
}

// Node is a node of an XML document tree. The two implementations are
// *Element and PCData. Trees are immutable once constructed: transforms such
// as Map and Fold build new values instead of rewriting nodes in place, and
// no node holds a back-reference to its parent or to the source text.
type Node interface {
	// node seals the interface to the two variants defined in this package.
	node()
}

// Element is a tagged node with ordered attributes and ordered children.
// An element with no children is "childless" and renders self-closing.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

func (*Element) node() {}

// PCData is raw parsed character data. The text is stored unescaped;
// escaping happens only during serialization, never during construction.
type PCData string

func (PCData) node() {}

// TagName returns the tag identifier of n. It fails with *NotElementError
// if n is a text node.
func TagName(n Node) (string, error) {
	el, ok := n.(*Element)
	if !ok {
		return "", &NotElementError{Node: n}
	}
	return el.Name, nil
}

// Text returns the raw character data of n. It fails with *NotPCDataError
// if n is an element.
func Text(n Node) (string, error) {
	t, ok := n.(PCData)
	if !ok {
		return "", &NotPCDataError{Node: n}
	}
	return string(t), nil
}

// Attributes returns the ordered attribute sequence of n.
func Attributes(n Node) ([]Attr, error) {
	el, ok := n.(*Element)
	if !ok {
		return nil, &NotElementError{Node: n}
	}
	return el.Attrs, nil
}

// Attribute looks up name among the attributes of n, comparing names
// case-insensitively, and returns the value of the first match. It fails
// with *NoAttributeError if no attribute matches.
func Attribute(n Node, name string) (string, error) {
	el, ok := n.(*Element)
	if !ok {
		return "", &NotElementError{Node: n}
	}
	for _, a := range el.Attrs {
		if strings.EqualFold(a.Name, name) {
			return a.Value, nil
		}
	}
	return "", &NoAttributeError{Name: name}
}

// Children returns the ordered child sequence of n.
func Children(n Node) ([]Node, error) {
	el, ok := n.(*Element)
	if !ok {
		return nil, &NotElementError{Node: n}
	}
	return el.Children, nil
}

// ForEach applies f to each direct child of n in sequence order. It does
// not recurse into grandchildren.
func ForEach(n Node, f func(Node)) error {
	el, ok := n.(*Element)
	if !ok {
		return &NotElementError{Node: n}
	}
	for _, c := range el.Children {
		f(c)
	}
	return nil
}

// Map applies f to each direct child of n and returns the results in child
// order. It does not build a new tree; the caller decides how to reassemble
// the results.
func Map[T any](n Node, f func(Node) T) ([]T, error) {
	el, ok := n.(*Element)
	if !ok {
		return nil, &NotElementError{Node: n}
	}
	out := make([]T, len(el.Children))
	for i, c := range el.Children {
		out[i] = f(c)
	}
	return out, nil
}

// Fold reduces the direct children of n in child order, threading an
// accumulator through f.
func Fold[T any](n Node, acc T, f func(T, Node) T) (T, error) {
	el, ok := n.(*Element)
	if !ok {
		return acc, &NotElementError{Node: n}
	}
	for _, c := range el.Children {
		acc = f(acc, c)
	}
	return acc, nil
}
