package rod

import (
	"context"

	"github.com/GongyiChuren/docsift"
	"github.com/ysmood/gson"
)

// Compile-time interface verification.
var _ docsift.Observer = (*Page)(nil)

// observerBinding is the name of the function the injected MutationObserver
// calls back into.
const observerBinding = "docsiftChanged"

// observerJS installs a MutationObserver at the document root watching
// child-list changes across the whole subtree. Installation is guarded so
// re-evaluation never stacks observers.
const observerJS = `() => {
	if (window.__docsiftObserver) { return; }
	const obs = new MutationObserver(() => { window.docsiftChanged('1'); });
	obs.observe(document.documentElement, { childList: true, subtree: true });
	window.__docsiftObserver = obs;
}`

// observerTeardownJS disconnects and removes the installed observer.
const observerTeardownJS = `() => {
	if (window.__docsiftObserver) {
		window.__docsiftObserver.disconnect();
		delete window.__docsiftObserver;
	}
}`

// Subscribe installs a structural DOM change observer on the page; onChange
// fires once per mutation batch. The returned function disconnects the
// observer and releases the binding.
func (p *Page) Subscribe(ctx context.Context, onChange func()) (func(), error) {
	stop, err := p.page.Expose(observerBinding, func(gson.JSON) (interface{}, error) {
		onChange()
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := p.page.Context(ctx).Eval(observerJS); err != nil {
		_ = stop()
		return nil, err
	}

	unsubscribe := func() {
		_, _ = p.page.Eval(observerTeardownJS)
		_ = stop()
	}
	return unsubscribe, nil
}
