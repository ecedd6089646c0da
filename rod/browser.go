// Package rod provides browser-backed implementations of the discovery
// channel interfaces using Chrome automation.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Browser owns a Chrome instance. Close must be called when the Browser is
// no longer needed.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// BrowserOption configures a Browser.
type BrowserOption func(*launcher.Launcher)

// WithHeadful launches a visible browser window instead of the default
// headless one. Used for the open-in-browser download fallback.
func WithHeadful() BrowserOption {
	return func(l *launcher.Launcher) {
		l.Headless(false).Leakless(false)
	}
}

// NewBrowser launches a Chrome browser and connects to it.
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(opts ...BrowserOption) (*Browser, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	for _, opt := range opts {
		opt(l)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Browser{browser: browser, launcher: l}, nil
}

// OpenURL opens url in a new tab and waits for the load event. This is the
// fallback path when a download cannot be saved directly: the browser is
// handed the URL instead.
func (b *Browser) OpenURL(ctx context.Context, url string) error {
	page, err := b.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return err
	}
	return page.WaitLoad()
}

// Close releases browser resources.
func (b *Browser) Close() error {
	err := b.browser.Close()
	if b.launcher != nil {
		b.launcher.Kill()
	}
	return err
}
