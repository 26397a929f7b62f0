package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/translatable"
	"github.com/fwojciec/translatable/etree"
	"github.com/fwojciec/translatable/goquery"
	"github.com/fwojciec/translatable/sqlite"
)

// sourceResult is one source's extraction in JSON output.
type sourceResult struct {
	Source string              `json:"source"`
	Items  []translatable.Item `json:"items"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	opts, err := c.options()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}

	contents, err := loadSources(deps.Ctx, deps.Fetcher, c.Sources, c.Concurrency)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}

	results := make([]sourceResult, 0, len(c.Sources))
	for i, source := range c.Sources {
		items, err := c.extract(deps, source, contents[i], opts)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", source, describe(err))
			return err
		}
		results = append(results, sourceResult{Source: source, Items: items})
	}

	if c.Format == "json" {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			fmt.Fprintf(deps.Stdout, "# %s (%d items)\n", r.Source, len(r.Items))
		}
		if out := translatable.FormatItems(r.Items); out != "" {
			fmt.Fprintln(deps.Stdout, out)
		}
	}
	return nil
}

// options builds extraction options from flags. SourceLanguageIsEnglish is
// resolved per source in extract.
func (c *ExtractCmd) options() (translatable.Options, error) {
	if c.Selector != "" && c.Main != "none" {
		return translatable.Options{}, translatable.Errorf(translatable.EINVALID, "--selector and --main cannot be combined")
	}
	if c.XML && (c.Selector != "" || c.Main != "none") {
		return translatable.Options{}, translatable.Errorf(translatable.EINVALID, "--xml cannot be combined with --selector or --main")
	}

	strategy, err := translatable.ParseStrategy(c.Strategy)
	if err != nil {
		return translatable.Options{}, err
	}

	opts := translatable.DefaultOptions()
	opts.Strategy = strategy
	opts.MaxDepth = c.MaxDepth
	opts.HybridDepthThreshold = c.Threshold
	opts.AncestorLookbackBound = c.Lookback
	opts.LanguageDetectionEnabled = c.LangDetect
	if err := opts.Validate(); err != nil {
		return translatable.Options{}, err
	}
	return opts, nil
}

// extract returns the items of one source, consulting the store first when
// one is configured.
func (c *ExtractCmd) extract(deps *Dependencies, source, content string, opts translatable.Options) ([]translatable.Item, error) {
	root, english, err := c.root(deps, content)
	if err != nil {
		return nil, err
	}

	switch c.SourceEnglish {
	case "yes":
		opts.SourceLanguageIsEnglish = true
	case "no":
		opts.SourceLanguageIsEnglish = false
	default:
		opts.SourceLanguageIsEnglish = english
	}

	if deps.Store == nil {
		return extractTree(deps, root, opts), nil
	}

	key := translatable.CacheKey(root, opts) + "|" + c.rootSelection()
	hash := sqlite.HashContent(content)

	stored, err := deps.Store.FindExtraction(deps.Ctx, key, hash)
	if err == nil {
		return stored.Items, nil
	}
	if translatable.ErrorCode(err) != translatable.ENOTFOUND {
		return nil, err
	}

	items := extractTree(deps, root, opts)
	if err := deps.Store.CreateExtraction(deps.Ctx, &translatable.Extraction{
		Key:         key,
		ContentHash: hash,
		Source:      source,
		Items:       items,
	}); err != nil {
		return nil, err
	}
	return items, nil
}

// extractTree runs the engine over a freshly parsed tree. Roots of
// different sources can share an identity hint and options, so the
// session cache is cleared first to keep one source's items from being
// served for another.
func extractTree(deps *Dependencies, root translatable.Node, opts translatable.Options) []translatable.Item {
	deps.Extractor.ClearCache()
	return deps.Extractor.Extract(root, opts)
}

// root parses content and returns the extraction root and whether the
// document declares English (or nothing).
func (c *ExtractCmd) root(deps *Dependencies, content string) (translatable.Node, bool, error) {
	if c.XML {
		root, err := etree.Parse(strings.NewReader(content))
		return root, true, err
	}

	doc, err := goquery.Parse(content)
	if err != nil {
		return nil, false, err
	}
	english := doc.SourceLanguageIsEnglish()

	if c.Main != "none" {
		locator, ok := deps.Locators[c.Main]
		if !ok {
			return nil, false, translatable.Errorf(translatable.EINVALID, "unknown content locator %q", c.Main)
		}
		root, err := locator.Locate(content)
		return root, english, err
	}

	root, err := doc.Root(c.Selector)
	return root, english, err
}

// rootSelection identifies how the root was chosen, so stored results for one
// document under different selections do not collide.
func (c *ExtractCmd) rootSelection() string {
	return fmt.Sprintf("xml=%t main=%s selector=%s", c.XML, c.Main, c.Selector)
}
