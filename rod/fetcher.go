// Package rod fetches JavaScript-rendered pages through a headless Chrome
// browser so that client-side content can be extracted.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/translatable"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	// DefaultFetchTimeout bounds a single page navigation and render.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultMaxPages is the number of pages rendered before the browser is
	// relaunched. Chrome memory grows across pages and never fully returns.
	DefaultMaxPages = 75
)

// serializeJS returns the document with open shadow roots inlined as
// declarative templates, or null when the browser lacks getHTML.
const serializeJS = `() => {
	const root = document.documentElement;
	if (typeof root.getHTML !== 'function') return null;
	const shadows = [];
	const collect = (node) => {
		for (const el of node.querySelectorAll('*')) {
			if (el.shadowRoot) {
				shadows.push(el.shadowRoot);
				collect(el.shadowRoot);
			}
		}
	};
	collect(document);
	const attrs = Array.from(root.attributes)
		.map((a) => ' ' + a.name + '="' + a.value.replace(/"/g, '&quot;') + '"')
		.join('');
	return '<!DOCTYPE html><html' + attrs + '>' +
		root.getHTML({ serializableShadowRoots: true, shadowRoots: shadows }) +
		'</html>';
}`

// Ensure Fetcher implements translatable.Fetcher at compile time.
var _ translatable.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	timeout  time.Duration
	maxPages int

	mu     sync.Mutex
	cur    *instance
	pages  int
	closed bool

	// retiring tracks recycled browsers that are still draining.
	retiring sync.WaitGroup
}

// instance is one launched browser and the fetches still using it.
type instance struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	inflight sync.WaitGroup
}

// close waits for in-flight fetches, then stops the browser process.
func (in *instance) close() error {
	in.inflight.Wait()
	err := in.browser.Close()
	in.launcher.Kill()
	return err
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets how many pages are rendered before the browser is
// relaunched. Values below 1 disable recycling.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	in, err := launch()
	if err != nil {
		return nil, err
	}
	f.cur = in
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, release, err := f.acquire()
	if err != nil {
		return "", err
	}
	defer release()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	res, err := page.Eval(serializeJS)
	if err != nil {
		return "", err
	}
	if !res.Value.Nil() {
		if html := res.Value.Str(); html != "" {
			return html, nil
		}
	}

	return page.HTML()
}

// Close releases browser resources, waiting for in-flight fetches to
// finish. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	in := f.cur
	f.cur = nil
	f.mu.Unlock()

	err := in.close()
	f.retiring.Wait()
	return err
}

// acquire returns the current browser and a func that must be called when
// the caller is done with it. The browser is relaunched once maxPages pages
// have been rendered; the old one is closed after its fetches complete.
func (f *Fetcher) acquire() (*rod.Browser, func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, nil, translatable.Errorf(translatable.EINVALID, "fetcher is closed")
	}

	if f.maxPages > 0 && f.pages >= f.maxPages {
		f.recycle()
	}
	f.pages++

	in := f.cur
	in.inflight.Add(1)
	return in.browser, in.inflight.Done, nil
}

// recycle swaps in a fresh browser. The old one is kept if the launch fails.
// Must be called with mu held.
func (f *Fetcher) recycle() {
	in, err := launch()
	if err != nil {
		return
	}
	old := f.cur
	f.cur = in
	f.pages = 0
	f.retiring.Go(func() { _ = old.close() })
}

// launch starts a browser with flags that keep background pages rendering.
func launch() (*instance, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &instance{browser: browser, launcher: l}, nil
}
