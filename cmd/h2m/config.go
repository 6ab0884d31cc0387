package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgonek/html-md-converter/converter"
	"gopkg.in/yaml.v3"
)

const (
	profileDefault = "default"
	profileArticle = "article"
)

// fileConfig mirrors the YAML config file schema.
type fileConfig struct {
	Profile    string   `yaml:"profile"`
	FilterTags []string `yaml:"filter_tags"`
	MaxDepth   int      `yaml:"max_depth"`
	MaxSize    int      `yaml:"max_size"`
}

func loadFileConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// profileConfig maps a named profile to a base converter configuration.
func profileConfig(profile string) (converter.Config, error) {
	switch strings.ToLower(strings.TrimSpace(profile)) {
	case "", profileDefault:
		return converter.Config{}, nil
	case profileArticle:
		// Articles drop page chrome in addition to the default filter set.
		return converter.Config{
			FilterTags: append(converter.DefaultFilterTags(), "header", "footer", "nav"),
		}, nil
	default:
		return converter.Config{}, fmt.Errorf("unknown profile %q (allowed: default, article)", profile)
	}
}
