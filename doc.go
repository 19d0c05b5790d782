/*
Package xmlight provides a minimal, immutable document tree for XML-like
markup, capability-checked accessors over it, and serializers that render a
tree back to text.

The tree has exactly two node kinds: *Element, a tag with ordered attributes
and ordered children, and PCData, raw character data. Trees are built by
Parse (or constructed directly) and are never mutated; transforms such as
Map and Fold produce new values.

	doc, err := xmlight.ParseString(`<user id="7"><user_name>ada</user_name></user>`)
	if err != nil {
		// err is a *xmlight.ParseError with a line/column position
	}

	id, _ := xmlight.Attribute(doc, "ID") // attribute lookup is case-insensitive

Three renderings are available:

	xmlight.ToString(doc)                       // <user id="7"><user_name>ada</user_name></user>
	xmlight.ToStringFmt(doc, xmlight.FormatXML) // indented, one node per line
	xmlight.ToHumanString(doc)                  // tag-stripped: "User name: ada"

The serializers write through the Sink interface (append byte, append
string), so output can go straight to a stream without building an
intermediate string.

# Escaping

Text content escapes the five reserved characters, with one deliberate
exception: an ampersand that looks like the start of a numeric character
reference ("&#" followed by a digit or 'x') is passed through unescaped, so
text already carrying "&#...;" sequences is not double-escaped. Attribute
values escape only the double quote; '&' and '<' in attribute values are
emitted verbatim. Both behaviors are intentional compatibility choices and
are pinned by the test suite; a value containing '&' or '<' can therefore
produce output that is not strictly well-formed XML.
*/
package xmlight
