package xmlight_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-xmlight"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.xml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			var actual []byte
			doc, err := xmlight.Parse(src)
			if err != nil {
				// Documents that are expected to fail keep the diagnostic
				// as their golden content.
				actual = []byte(err.Error())
			} else {
				actual = []byte(xmlight.ToStringFmt(doc, xmlight.FormatXML))
			}

			goldenFile := strings.Replace(file, ".xml", ".golden", 1)
			if *update {
				require.NoError(t, os.WriteFile(goldenFile, actual, 0o644))
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "golden file not found, run with -update to create it")
			require.Equal(t, string(expected), string(actual))
		})
	}
}
