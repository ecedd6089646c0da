package mock

import (
	"context"

	"github.com/GongyiChuren/docsift"
)

var _ docsift.Policy = (*Policy)(nil)

// Policy is a mock implementation of docsift.Policy.
type Policy struct {
	ModeFn             func() docsift.Mode
	WhitelistFn        func() []string
	IsEnabledForHostFn func(host string) bool
	EnableHostFn       func(ctx context.Context, host string) error
	DisableHostFn      func(ctx context.Context, host string) error
	EnableAllFn        func(ctx context.Context) error
	ClearWhitelistFn   func(ctx context.Context) error
}

func (p *Policy) Mode() docsift.Mode {
	return p.ModeFn()
}

func (p *Policy) Whitelist() []string {
	return p.WhitelistFn()
}

func (p *Policy) IsEnabledForHost(host string) bool {
	return p.IsEnabledForHostFn(host)
}

func (p *Policy) EnableHost(ctx context.Context, host string) error {
	return p.EnableHostFn(ctx, host)
}

func (p *Policy) DisableHost(ctx context.Context, host string) error {
	return p.DisableHostFn(ctx, host)
}

func (p *Policy) EnableAll(ctx context.Context) error {
	return p.EnableAllFn(ctx)
}

func (p *Policy) ClearWhitelist(ctx context.Context) error {
	return p.ClearWhitelistFn(ctx)
}
