//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/translatable"
	transhtml "github.com/fwojciec/translatable/html"
	"github.com/fwojciec/translatable/rod"
	"github.com/fwojciec/translatable/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ translatable.Fetcher = (*rod.Fetcher)(nil)

func serve(t *testing.T, page string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newFetcher(t *testing.T, opts ...rod.Option) *rod.Fetcher {
	t.Helper()
	fetcher, err := rod.NewFetcher(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = fetcher.Close() })
	return fetcher
}

func extractContents(t *testing.T, page string) []string {
	t.Helper()
	root, err := transhtml.Parse(strings.NewReader(page))
	require.NoError(t, err)

	items := walk.NewEngine().Extract(root, translatable.DefaultOptions())
	contents := make([]string, len(items))
	for i, item := range items {
		contents[i] = item.Content
	}
	return contents
}

func TestFetcher_Fetch_ExtractsScriptRenderedText(t *testing.T) {
	t.Parallel()

	srv := serve(t, `<!DOCTYPE html>
<html lang="de">
<body>
<button id="buy"></button>
<script>
const b = document.getElementById('buy');
b.textContent = ['Jetzt', 'kaufen'].join(' ');
b.setAttribute('title', ['In den', 'Warenkorb'].join(' '));
</script>
</body>
</html>`)

	page, err := newFetcher(t).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, page, `lang="de"`, "root attributes survive serialization")
	contents := extractContents(t, page)
	assert.Contains(t, contents, "Jetzt kaufen")
	assert.Contains(t, contents, "In den Warenkorb")
}

func TestFetcher_Fetch_InlinesOpenShadowRoots(t *testing.T) {
	t.Parallel()

	srv := serve(t, `<!DOCTYPE html>
<html>
<body>
<price-tag></price-tag>
<script>
customElements.define('price-tag', class extends HTMLElement {
  constructor() {
    super();
    const shadow = this.attachShadow({ mode: 'open' });
    const label = document.createElement('span');
    label.textContent = ['Free', 'shipping', 'today'].join(' ');
    shadow.appendChild(label);
  }
});
</script>
</body>
</html>`)

	page, err := newFetcher(t).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, page, `shadowrootmode="open"`)
	assert.Contains(t, extractContents(t, page), "Free shipping today")
}

func TestFetcher_Fetch_FetchTimeoutBoundsSlowPages(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	fetcher := newFetcher(t, rod.WithFetchTimeout(200*time.Millisecond))

	start := time.Now()
	_, err := fetcher.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestFetcher_Fetch_AfterCloseReturnsInvalid(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	require.NoError(t, fetcher.Close())
	require.NoError(t, fetcher.Close(), "Close is idempotent")

	_, err = fetcher.Fetch(context.Background(), "http://example.com")

	assert.Equal(t, translatable.EINVALID, translatable.ErrorCode(err))
	assert.Contains(t, translatable.ErrorMessage(err), "closed")
}

func TestFetcher_Fetch_KeepsWorkingAcrossBrowserRecycling(t *testing.T) {
	t.Parallel()

	srv := serve(t, `<html lang="en"><body><p>Recycled</p></body></html>`)
	fetcher := newFetcher(t, rod.WithMaxPages(2))

	for range 5 {
		page, err := fetcher.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Contains(t, extractContents(t, page), "Recycled")
	}
}

func TestFetcher_Fetch_ConcurrentFetchesSurviveRecycling(t *testing.T) {
	t.Parallel()

	srv := serve(t, `<html><body><p>Parallel</p></body></html>`)
	fetcher := newFetcher(t, rod.WithMaxPages(1))

	var wg sync.WaitGroup
	errs := make([]error, 6)
	for i := range errs {
		wg.Go(func() {
			_, errs[i] = fetcher.Fetch(context.Background(), srv.URL)
		})
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}
