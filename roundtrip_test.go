package xmlight_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-xmlight"
)

// Compact rendering, re-parsing and rendering again must be byte-identical
// for trees built from ASCII text whose attribute values are free of '&'
// and '<' (the attribute escaping gap excludes richer values).
func TestCompactRoundTrip(t *testing.T) {
	trees := map[string]xmlight.Node{
		"simple": &xmlight.Element{Name: "a"},
		"nested": sampleTree(),
		"mixed content": &xmlight.Element{Name: "p", Children: []xmlight.Node{
			xmlight.PCData("one"),
			&xmlight.Element{Name: "em", Children: []xmlight.Node{xmlight.PCData("two")}},
			xmlight.PCData("three"),
			xmlight.PCData("four"),
		}},
		"escaped text": &xmlight.Element{Name: "t", Children: []xmlight.Node{
			xmlight.PCData(`a < b > c & d ' e " f`),
		}},
		"attributes": &xmlight.Element{Name: "x", Attrs: []xmlight.Attr{
			{Name: "one", Value: "plain"},
			{Name: "two", Value: `with "quotes"`},
		}},
	}

	for name, tree := range trees {
		t.Run(name, func(t *testing.T) {
			first := xmlight.ToString(tree)

			reparsed, err := xmlight.ParseString(first)
			require.NoError(t, err)

			second := xmlight.ToString(reparsed)
			require.Equal(t, first, second)
		})
	}
}

// Pretty output parses back to the same tree as the compact output, since
// the parser drops the indentation whitespace the pretty renderer adds.
// Trees with non-element text children are excluded: their text picks up
// indentation in pretty form.
func TestPrettyParsesToSameTree(t *testing.T) {
	tree := sampleTree()

	fromCompact, err := xmlight.ParseString(xmlight.ToString(tree))
	require.NoError(t, err)

	fromPretty, err := xmlight.ParseString(xmlight.ToStringFmt(tree, xmlight.FormatXML))
	require.NoError(t, err)

	require.Equal(t, fromCompact, fromPretty)
}
