package rod

import (
	"context"
	"net/url"
	"sync"

	"github.com/GongyiChuren/docsift"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docsift.PageReader = (*Page)(nil)

// Page wraps an attached browser tab. One Page corresponds to one watch
// session; its item set lives exactly as long as the tab.
type Page struct {
	// SessionID identifies this watch session in logs.
	SessionID string

	page *rod.Page
	base *url.URL

	tapMu        sync.Mutex
	tapInstalled bool
}

// Attach opens rawURL in a new tab and waits for the load event.
func (b *Browser) Attach(ctx context.Context, rawURL string) (*Page, error) {
	base, err := url.Parse(rawURL)
	if err != nil || !base.IsAbs() || base.Host == "" {
		return nil, docsift.Errorf(docsift.EINVALID, "invalid page URL %q", rawURL)
	}

	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	page = page.Context(ctx)

	if err := page.Navigate(rawURL); err != nil {
		_ = page.Close()
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, err
	}

	return &Page{
		SessionID: uuid.New().String(),
		page:      page,
		base:      base,
	}, nil
}

// Base returns the page's base URL for resolving relative candidates.
func (p *Page) Base() *url.URL {
	return p.base
}

// Host returns the page's hostname for activation checks.
func (p *Page) Host() string {
	return p.base.Hostname()
}

// HTML returns the rendered HTML of the page.
func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.page.Context(ctx).HTML()
}

// Close closes the tab.
func (p *Page) Close() error {
	return p.page.Close()
}
