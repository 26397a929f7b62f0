package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/translatable"
	"golang.org/x/sync/errgroup"
)

// loadSources reads every source concurrently, at most concurrency at a
// time, and returns their contents in input order. URLs go through
// fetcher; anything else is read from disk. The first failure cancels the
// remaining loads.
func loadSources(ctx context.Context, fetcher translatable.Fetcher, sources []string, concurrency int) ([]string, error) {
	if concurrency <= 0 {
		concurrency = 1
	}

	contents := make([]string, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, source := range sources {
		g.Go(func() error {
			content, err := loadSource(gctx, fetcher, source)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			contents[i] = content
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return contents, nil
}

func loadSource(ctx context.Context, fetcher translatable.Fetcher, source string) (string, error) {
	if isURL(source) {
		if fetcher == nil {
			return "", translatable.Errorf(translatable.EINTERNAL, "no fetcher configured for URL sources")
		}
		return fetcher.Fetch(ctx, source)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
