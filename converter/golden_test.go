package converter

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func normalizeNewlines(value string) string {
	return strings.ReplaceAll(value, "\r\n", "\n")
}

func TestGoldenFiles(t *testing.T) {
	err := filepath.Walk("testdata", func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)

		if info.IsDir() || filepath.Ext(path) != ".html" {
			return nil
		}

		t.Run(filepath.Base(path), func(t *testing.T) {
			input, err := os.ReadFile(path)
			require.NoError(t, err)

			goldenPath := strings.TrimSuffix(path, ".html") + ".md"

			result, err := newTestConverter(t, Config{}).ConvertBytes(input)
			require.NoError(t, err)
			output := result.Markdown

			if *update {
				require.NoError(t, os.WriteFile(goldenPath, []byte(output), 0644))
				t.Logf("Updated golden file: %s", goldenPath)
				return
			}

			expected, err := os.ReadFile(goldenPath)
			if os.IsNotExist(err) {
				t.Fatalf("Golden file missing: %s. Run with -update to create it.", goldenPath)
			}
			require.NoError(t, err)

			assert.Equal(t, normalizeNewlines(string(expected)), normalizeNewlines(output))
		})

		return nil
	})
	require.NoError(t, err)
}
