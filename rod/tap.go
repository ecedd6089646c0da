package rod

import (
	"context"
	"net/http"
	"strings"

	"github.com/GongyiChuren/docsift"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Compile-time interface verification.
var _ docsift.RequestTap = (*Page)(nil)

// Install wraps the page's fetch and XHR traffic exactly once per page.
// Every request is completed with its real response; when the content type
// indicates JSON or text, the body is handed to emit with the matching
// source. Inspection failures never affect delivery of the response to the
// page's own code. Repeated calls are no-ops; the wrappers stay installed
// for the page's lifetime.
func (p *Page) Install(ctx context.Context, emit docsift.EmitFunc) error {
	p.tapMu.Lock()
	defer p.tapMu.Unlock()
	if p.tapInstalled {
		return nil
	}

	router := p.page.Context(ctx).HijackRequests()

	handler := func(h *rod.Hijack) {
		// Complete the real request first; the page must observe the
		// response unchanged regardless of what inspection does.
		if err := h.LoadResponse(http.DefaultClient, true); err != nil {
			h.ContinueRequest(&proto.FetchContinueRequest{})
			return
		}

		inspectResponse(h, emit)
	}

	if err := router.Add("*", proto.NetworkResourceTypeXHR, handler); err != nil {
		return err
	}
	if err := router.Add("*", proto.NetworkResourceTypeFetch, handler); err != nil {
		return err
	}

	go router.Run()
	p.tapInstalled = true
	return nil
}

// inspectResponse feeds a JSON/text response body to emit. A panic while
// reading the hijacked response must not take down the router, so it is
// contained here.
func inspectResponse(h *rod.Hijack, emit docsift.EmitFunc) {
	defer func() { _ = recover() }()

	if !inspectableContentType(h.Response.Headers().Get("Content-Type")) {
		return
	}
	body := h.Response.Body()
	if body == "" {
		return
	}

	source := docsift.SourceFetch
	if h.Request.Type() == proto.NetworkResourceTypeXHR {
		source = docsift.SourceXHR
	}
	emit(body, source)
}

// inspectableContentType reports whether a content type indicates JSON or
// text.
func inspectableContentType(ct string) bool {
	ct = strings.ToLower(ct)
	return strings.Contains(ct, "json") || strings.Contains(ct, "text")
}
