//go:build integration

package rod_test

import (
	"context"
	"strings"
	"testing"
	"time"

	transhtml "github.com/fwojciec/translatable/html"
	"github.com/fwojciec/translatable/rod"
	"github.com/fwojciec/translatable/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Integration_HtmxDocs(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(ctx, "https://htmx.org/docs/")
	require.NoError(t, err)
	assert.NotEmpty(t, html, "expected non-empty HTML response")

	root, err := transhtml.Parse(strings.NewReader(html))
	require.NoError(t, err)

	items := walk.NewEngine().ExtractDefault(root)
	require.NotEmpty(t, items)

	var contents []string
	for _, item := range items {
		contents = append(contents, item.Content)
	}
	joined := strings.Join(contents, "\n")
	assert.Contains(t, joined, "htmx in a Nutshell", "expected rendered introduction section")
	assert.Contains(t, joined, "Installing", "expected rendered documentation sections")

	t.Logf("Extracted %d items from %d bytes", len(items), len(html))
}
