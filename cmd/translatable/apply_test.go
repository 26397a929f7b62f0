package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/translatable"
	main "github.com/fwojciec/translatable/cmd/translatable"
	"github.com/fwojciec/translatable/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("rewrites text and attributes", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html",
			`<html><body><h1> Welcome </h1><input placeholder="Search"><p>Untouched</p></body></html>`)
		translations := writeFile(t, "fr.json", `{"Welcome": "Bienvenue", "Search": "Rechercher"}`)

		stdout := &bytes.Buffer{}
		cmd := &main.ApplyCmd{Source: page, Translations: translations}

		require.NoError(t, cmd.Run(newDeps(stdout, &bytes.Buffer{})))

		out := stdout.String()
		assert.Contains(t, out, "<h1> Bienvenue </h1>")
		assert.Contains(t, out, `placeholder="Rechercher"`)
		assert.Contains(t, out, "<p>Untouched</p>")
	})

	t.Run("only rewrites inside the selected root", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html",
			`<html><body><header><p>Hello</p></header><main><p>Hello</p></main></body></html>`)
		translations := writeFile(t, "fr.json", `{"Hello": "Bonjour"}`)

		stdout := &bytes.Buffer{}
		cmd := &main.ApplyCmd{Source: page, Translations: translations}
		cmd.Selector = "main"

		require.NoError(t, cmd.Run(newDeps(stdout, &bytes.Buffer{})))

		assert.Contains(t, stdout.String(), "<header><p>Hello</p></header>")
		assert.Contains(t, stdout.String(), "<main><p>Bonjour</p></main>")
	})

	t.Run("fetches URL sources", func(t *testing.T) {
		t.Parallel()

		translations := writeFile(t, "de.json", `{"Hi": "Hallo"}`)
		deps := newDeps(&bytes.Buffer{}, &bytes.Buffer{})
		stdout := deps.Stdout.(*bytes.Buffer)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return `<html><body><p>Hi</p></body></html>`, nil
			},
		}

		cmd := &main.ApplyCmd{Source: "https://example.com/", Translations: translations}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "<p>Hallo</p>")
	})

	t.Run("rejects malformed translations", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", `<p>Hi</p>`)
		translations := writeFile(t, "bad.json", `["not", "a", "map"]`)

		stderr := &bytes.Buffer{}
		cmd := &main.ApplyCmd{Source: page, Translations: translations}
		err := cmd.Run(newDeps(&bytes.Buffer{}, stderr))

		require.Error(t, err)
		assert.Equal(t, translatable.EINVALID, translatable.ErrorCode(err))
		assert.Contains(t, stderr.String(), "invalid translations file")
	})
}
