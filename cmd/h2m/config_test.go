package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/html-md-converter/converter"
)

func TestProfileConfig(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		cfg, err := profileConfig(profileDefault)
		require.NoError(t, err)
		assert.Equal(t, converter.Config{}, cfg)
	})

	t.Run("empty falls back to default", func(t *testing.T) {
		cfg, err := profileConfig("")
		require.NoError(t, err)
		assert.Equal(t, converter.Config{}, cfg)
	})

	t.Run("article", func(t *testing.T) {
		cfg, err := profileConfig(profileArticle)
		require.NoError(t, err)
		assert.Contains(t, cfg.FilterTags, "script")
		assert.Contains(t, cfg.FilterTags, "header")
		assert.Contains(t, cfg.FilterTags, "footer")
		assert.Contains(t, cfg.FilterTags, "nav")
	})

	t.Run("case and whitespace tolerant", func(t *testing.T) {
		cfg, err := profileConfig("  Article ")
		require.NoError(t, err)
		assert.Contains(t, cfg.FilterTags, "nav")
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := profileConfig("aggressive")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "aggressive")
	})
}

func TestLoadFileConfig(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "h2m.yaml")
		data := "profile: article\nfilter_tags: [script, aside]\nmax_depth: 40\nmax_size: 2048\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := loadFileConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "article", cfg.Profile)
		assert.Equal(t, []string{"script", "aside"}, cfg.FilterTags)
		assert.Equal(t, 40, cfg.MaxDepth)
		assert.Equal(t, 2048, cfg.MaxSize)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadFileConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("profile: [unclosed"), 0o644))

		_, err := loadFileConfig(path)
		require.Error(t, err)
	})
}
