package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/translatable"
	"github.com/fwojciec/translatable/goquery"
)

// Run executes the apply command.
func (c *ApplyCmd) Run(deps *Dependencies) error {
	translations, err := readTranslations(c.Translations)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}

	content, err := loadSource(deps.Ctx, deps.Fetcher, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}

	doc, err := goquery.Parse(content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}
	root, err := doc.Root(c.Selector)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}

	opts := translatable.DefaultOptions()
	opts.EnableCache = false
	opts.SourceLanguageIsEnglish = doc.SourceLanguageIsEnglish()
	items := deps.Extractor.Extract(root, opts)

	applied := doc.Apply(root, items, translations)
	deps.Logger.Info("apply",
		"source", c.Source,
		"items", len(items),
		"applied", applied,
	)

	out, err := doc.HTML()
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, out)
	return nil
}

func readTranslations(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return nil, translatable.Errorf(translatable.EINVALID, "invalid translations file %s: %v", path, err)
	}
	return translations, nil
}
