package mock

import (
	"context"

	"github.com/GongyiChuren/docsift"
)

var _ docsift.PageReader = (*PageReader)(nil)

// PageReader is a mock implementation of docsift.PageReader.
type PageReader struct {
	HTMLFn func(ctx context.Context) (string, error)
}

func (p *PageReader) HTML(ctx context.Context) (string, error) {
	return p.HTMLFn(ctx)
}

var _ docsift.ResourceLog = (*ResourceLog)(nil)

// ResourceLog is a mock implementation of docsift.ResourceLog.
type ResourceLog struct {
	ResourceURLsFn func(ctx context.Context) ([]string, error)
}

func (r *ResourceLog) ResourceURLs(ctx context.Context) ([]string, error) {
	return r.ResourceURLsFn(ctx)
}

var _ docsift.Observer = (*Observer)(nil)

// Observer is a mock implementation of docsift.Observer.
type Observer struct {
	SubscribeFn func(ctx context.Context, onChange func()) (func(), error)
}

func (o *Observer) Subscribe(ctx context.Context, onChange func()) (func(), error) {
	return o.SubscribeFn(ctx, onChange)
}

var _ docsift.RequestTap = (*RequestTap)(nil)

// RequestTap is a mock implementation of docsift.RequestTap.
type RequestTap struct {
	InstallFn func(ctx context.Context, emit docsift.EmitFunc) error
}

func (t *RequestTap) Install(ctx context.Context, emit docsift.EmitFunc) error {
	return t.InstallFn(ctx, emit)
}

var _ docsift.CandidateExtractor = (*CandidateExtractor)(nil)

// CandidateExtractor is a mock implementation of docsift.CandidateExtractor.
type CandidateExtractor struct {
	ExtractCandidatesFn func(html string) ([]docsift.Candidate, error)
}

func (e *CandidateExtractor) ExtractCandidates(html string) ([]docsift.Candidate, error) {
	return e.ExtractCandidatesFn(html)
}
