package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/rgonek/html-md-converter/converter"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagOutput     string
	flagMaxDepth   int
	flagMaxSize    int
	flagFilterTags []string
	flagProfile    string
	flagSelect     string
	flagConfig     string
)

var rootCmd = &cobra.Command{
	Use:   "h2m [input-file]",
	Short: "Convert HTML documents to Markdown",
	Long: `h2m reads an HTML document from a file or standard input and writes
Markdown to a file or standard output.

Examples:
  h2m page.html
  curl -s https://example.com | h2m --profile article -o page.md
  h2m --select "article .content" --max-depth 40 page.html`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runConvert,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output Markdown file (default: standard output)")
	rootCmd.Flags().IntVar(&flagMaxDepth, "max-depth", 0, "Maximum nesting depth, 0 means unbounded")
	rootCmd.Flags().IntVar(&flagMaxSize, "max-size", 0, "Maximum input size in bytes (default 1000000)")
	rootCmd.Flags().StringSliceVar(&flagFilterTags, "filter-tags", nil, "HTML tags whose subtrees are removed before conversion")
	rootCmd.Flags().StringVar(&flagProfile, "profile", "", "Profile: default|article")
	rootCmd.Flags().StringVar(&flagSelect, "select", "", "CSS selector limiting conversion to matching elements")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file")
}

func runConvert(cmd *cobra.Command, args []string) error {
	var file fileConfig
	if flagConfig != "" {
		loaded, err := loadFileConfig(flagConfig)
		if err != nil {
			return err
		}
		file = loaded
	}

	cfg, err := resolveConfig(file, cmd)
	if err != nil {
		return err
	}

	input, err := readInput(cmd.Context(), args)
	if err != nil {
		return err
	}

	document := string(input)
	if flagSelect != "" {
		document, err = applySelector(document, flagSelect)
		if err != nil {
			return err
		}
	}

	conv, err := converter.New(cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	result, err := conv.Convert(document)
	if err != nil {
		return fmt.Errorf("converting input: %w", err)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", warning.Type, warning.Message)
	}

	return writeOutput(result.Markdown)
}

// resolveConfig layers the converter configuration: profile first, then the
// config file, then explicitly set flags.
func resolveConfig(file fileConfig, cmd *cobra.Command) (converter.Config, error) {
	profile := file.Profile
	if cmd.Flags().Changed("profile") {
		profile = flagProfile
	}

	cfg, err := profileConfig(profile)
	if err != nil {
		return converter.Config{}, err
	}

	if file.FilterTags != nil {
		cfg.FilterTags = file.FilterTags
	}
	if file.MaxDepth > 0 {
		cfg.MaxDepth = file.MaxDepth
	}
	if file.MaxSize > 0 {
		cfg.MaxSize = file.MaxSize
	}

	if cmd.Flags().Changed("filter-tags") {
		cfg.FilterTags = flagFilterTags
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxDepth = flagMaxDepth
	}
	if cmd.Flags().Changed("max-size") {
		cfg.MaxSize = flagMaxSize
	}

	return cfg, nil
}

// readInput reads the named file, or standard input when no file is given.
// The stdin read runs in a goroutine so an interrupt still terminates the
// process with the conventional exit code.
func readInput(ctx context.Context, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading input file: %w", err)
		}
		return data, nil
	}

	type readResult struct {
		data []byte
		err  error
	}
	done := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(os.Stdin)
		done <- readResult{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("reading standard input: %w", res.err)
		}
		return res.data, nil
	}
}

// applySelector narrows the document to the elements matching a CSS
// selector, concatenating their outer HTML in document order.
func applySelector(document, selector string) (string, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return "", fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return "", fmt.Errorf("parsing input for selection: %w", err)
	}

	var sb strings.Builder
	var htmlErr error
	doc.FindMatcher(matcher).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		fragment, err := goquery.OuterHtml(sel)
		if err != nil {
			htmlErr = err
			return false
		}
		sb.WriteString(fragment)
		return true
	})
	if htmlErr != nil {
		return "", fmt.Errorf("extracting selection: %w", htmlErr)
	}

	return sb.String(), nil
}

func writeOutput(markdown string) error {
	if flagOutput == "" {
		_, err := io.WriteString(os.Stdout, markdown)
		return err
	}
	if err := os.WriteFile(flagOutput, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
