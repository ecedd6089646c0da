package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/GongyiChuren/docsift"
	"github.com/GongyiChuren/docsift/goquery"
	"github.com/GongyiChuren/docsift/harvest"
	docrod "github.com/GongyiChuren/docsift/rod"
	docslog "github.com/GongyiChuren/docsift/slog"
)

// Run executes the watch command.
func (c *WatchCmd) Run(deps *Dependencies) error {
	u, err := url.Parse(c.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		fmt.Fprintf(deps.Stderr, "error: invalid page URL %q\n", c.URL)
		return docsift.Errorf(docsift.EINVALID, "invalid page URL %q", c.URL)
	}

	// The activation check happens before any browser work; a disabled
	// host never gets instrumented at all.
	if !deps.Policy.IsEnabledForHost(u.Hostname()) {
		fmt.Fprintf(deps.Stdout, "Discovery is disabled for %s. Use 'docsift allow %s' to enable it.\n",
			u.Hostname(), u.Hostname())
		return nil
	}

	deep := c.Deep || harvest.Preferred(deps.Ctx, deps.Settings)

	items, err := deps.Watcher.Watch(deps.Ctx, c.URL, deep, c.Duration)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No links discovered.")
		return nil
	}

	for _, item := range items {
		fmt.Fprintln(deps.Stdout, item.URL)
	}
	return nil
}

// browserWatcher implements Watcher on a live Chrome page.
type browserWatcher struct {
	settings docsift.SettingsStore
	logger   *slog.Logger
	headful  bool
}

// Watch attaches to pageURL, runs the combined one-shot sweep (plus the
// continuous channels when deep is set), keeps watching for duration, and
// returns the discovered items in insertion order.
func (w *browserWatcher) Watch(ctx context.Context, pageURL string, deep bool, duration time.Duration) ([]docsift.Item, error) {
	var opts []docrod.BrowserOption
	if w.headful {
		opts = append(opts, docrod.WithHeadful())
	}

	browser, err := docrod.NewBrowser(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Attach(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	logger := w.logger.With("session", page.SessionID)

	store := harvest.NewStore(nil)
	harvester := harvest.NewHarvester(
		&harvest.Pipeline{
			Store: docslog.NewLoggingStore(store, logger),
			Base:  page.Base(),
		},
		page,
		goquery.NewExtractor(),
		page,
		logger,
	)

	if deep {
		dm := harvest.NewDeepMode(w.settings, page, page, harvester, logger)
		if err := dm.Enable(ctx); err != nil {
			return nil, err
		}
	} else {
		if err := harvester.Sweep(ctx); err != nil {
			return nil, err
		}
	}

	select {
	case <-time.After(duration):
	case <-ctx.Done():
	}

	// Late-rendered content gets one last chance before teardown.
	if err := harvester.SweepDOM(ctx); err != nil {
		logger.Debug("final sweep failed", "err", err)
	}

	return store.All(), nil
}
