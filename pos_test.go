package xmlight_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-xmlight"
)

func TestParseErrorFormatting(t *testing.T) {
	testCases := []struct {
		name     string
		err      *xmlight.ParseError
		expected string
	}{
		{
			name: "zero-width span reports a single character",
			err: &xmlight.ParseError{
				Kind: xmlight.IdentExpected,
				Pos:  xmlight.Pos{Line: 3, LineStart: 40, Min: 45, Max: 45},
			},
			expected: "Ident expected line 3 character 5",
		},
		{
			name: "wider span reports a character range",
			err: &xmlight.ParseError{
				Kind: xmlight.IdentExpected,
				Pos:  xmlight.Pos{Line: 3, LineStart: 40, Min: 45, Max: 48},
			},
			expected: "Ident expected line 3 characters 5-8",
		},
		{
			name: "end of tag expected interpolates the tag name",
			err: &xmlight.ParseError{
				Kind: xmlight.EndOfTagExpected,
				Tag:  "book",
				Pos:  xmlight.Pos{Line: 1, LineStart: 0, Min: 10, Max: 17},
			},
			expected: "End of tag expected <book> line 1 characters 10-17",
		},
		{
			name: "unterminated comment",
			err: &xmlight.ParseError{
				Kind: xmlight.UnterminatedComment,
				Pos:  xmlight.Pos{Line: 2, LineStart: 8, Min: 8, Max: 20},
			},
			expected: "Unterminated comment line 2 characters 0-12",
		},
		{
			name: "end of file expected",
			err: &xmlight.ParseError{
				Kind: xmlight.EOFExpected,
				Pos:  xmlight.Pos{Line: 4, LineStart: 60, Min: 62, Max: 62},
			},
			expected: "End of file expected line 4 character 2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestPosAccessors(t *testing.T) {
	p := xmlight.Pos{Line: 3, LineStart: 40, Min: 45, Max: 48}

	require.Equal(t, 3, p.Line)

	start, end := p.Range()
	require.Equal(t, 5, start)
	require.Equal(t, 8, end)

	absStart, absEnd := p.AbsRange()
	require.Equal(t, 45, absStart)
	require.Equal(t, 48, absEnd)
}

func TestErrorKindMessages(t *testing.T) {
	at := xmlight.Pos{Line: 1}
	kinds := map[xmlight.ErrorKind]string{
		xmlight.UnterminatedComment:    "Unterminated comment",
		xmlight.UnterminatedString:     "Unterminated string",
		xmlight.UnterminatedEntity:     "Unterminated entity",
		xmlight.IdentExpected:          "Ident expected",
		xmlight.CloseExpected:          "Close expected",
		xmlight.NodeExpected:           "Node expected",
		xmlight.AttributeNameExpected:  "Attribute name expected",
		xmlight.AttributeValueExpected: "Attribute value expected",
		xmlight.EOFExpected:            "End of file expected",
	}
	for kind, msg := range kinds {
		err := &xmlight.ParseError{Kind: kind, Pos: at}
		require.Equal(t, msg+" line 1 character 0", err.Error())
	}
}
