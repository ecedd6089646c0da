package rod

import (
	"context"

	"github.com/GongyiChuren/docsift"
)

// Compile-time interface verification.
var _ docsift.ResourceLog = (*Page)(nil)

// resourceLogJS reads the browser's resource-timing log. Environments
// without the Performance API yield an empty list.
const resourceLogJS = `() => {
	try {
		return performance.getEntriesByType('resource').map(e => e.name);
	} catch (e) {
		return [];
	}
}`

// ResourceURLs returns the URLs recorded in the page's resource-timing log.
// Returns EUNAVAILABLE when the log cannot be read; callers swallow the
// failure and the sweep yields nothing.
func (p *Page) ResourceURLs(ctx context.Context) ([]string, error) {
	res, err := p.page.Context(ctx).Eval(resourceLogJS)
	if err != nil {
		return nil, docsift.Errorf(docsift.EUNAVAILABLE, "resource timing log unavailable: %v", err)
	}

	var urls []string
	for _, v := range res.Value.Arr() {
		if s := v.Str(); s != "" {
			urls = append(urls, s)
		}
	}
	return urls, nil
}
