package harvest

import (
	"context"
	"log/slog"

	"github.com/GongyiChuren/docsift"
	"golang.org/x/sync/errgroup"
)

// Harvester coordinates the discovery channels for one attached page. The
// DOM sweep is throttled so the continuous observer can re-trigger it freely;
// the resource-log sweep swallows environment failures and simply yields
// nothing.
type Harvester struct {
	Pipeline  *Pipeline
	Page      docsift.PageReader
	Extractor docsift.CandidateExtractor
	Resources docsift.ResourceLog
	Throttle  *Throttle
	Logger    *slog.Logger

	bodies *bodyCache
}

// NewHarvester creates a Harvester with the default sweep throttle.
func NewHarvester(pipeline *Pipeline, page docsift.PageReader, extractor docsift.CandidateExtractor, resources docsift.ResourceLog, logger *slog.Logger) *Harvester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Harvester{
		Pipeline:  pipeline,
		Page:      page,
		Extractor: extractor,
		Resources: resources,
		Throttle:  NewThrottle(DefaultSweepInterval),
		Logger:    logger,
		bodies:    newBodyCache(),
	}
}

// Sweep runs the combined one-shot sweep: the throttled DOM sweep and the
// resource-log sweep, concurrently.
func (h *Harvester) Sweep(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return h.SweepDOM(gctx) })
	g.Go(func() error { h.SweepResources(gctx); return nil })
	return g.Wait()
}

// SweepDOM scans the rendered DOM for candidates: link-bearing attributes of
// anchor/iframe/embed/object elements and the text of script/pre elements.
// Invocations within the throttle interval of the previous sweep are no-ops.
func (h *Harvester) SweepDOM(ctx context.Context) error {
	if !h.Throttle.Allow() {
		return nil
	}

	html, err := h.Page.HTML(ctx)
	if err != nil {
		return err
	}

	candidates, err := h.Extractor.ExtractCandidates(html)
	if err != nil {
		return err
	}

	for _, c := range candidates {
		switch c.Kind {
		case docsift.CandidateElement:
			h.Pipeline.SubmitElement(c.Value, docsift.SourceDOM)
		case docsift.CandidateText:
			h.Pipeline.SubmitText(c.Value, docsift.SourceInline)
		}
	}
	return nil
}

// SweepResources feeds the page's resource-timing log through the pipeline.
// Failures reading the log are swallowed; the sweep yields nothing.
func (h *Harvester) SweepResources(ctx context.Context) {
	urls, err := h.Resources.ResourceURLs(ctx)
	if err != nil {
		h.Logger.Debug("resource log unavailable", "err", err)
		return
	}
	for _, u := range urls {
		h.Pipeline.Submit(u, docsift.SourceResource)
	}
}

// EmitBody receives an intercepted response body and scans it for document
// URLs. Identical bodies are scanned only once.
func (h *Harvester) EmitBody(body string, source docsift.Source) {
	if body == "" {
		return
	}
	if !h.bodies.firstSighting(body) {
		return
	}
	h.Pipeline.SubmitText(body, source)
}
