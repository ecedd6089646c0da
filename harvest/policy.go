package harvest

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/GongyiChuren/docsift"
)

// Compile-time interface verification.
var _ docsift.Policy = (*Policy)(nil)

// Policy implements the site activation state machine over a persisted
// SettingsStore. The whitelist is stored as a JSON array of hostnames under
// the "whitelist" key and the mode under the "mode" key. An empty whitelist
// always implies ModeAll; this is enforced whenever a host is removed, not
// lazily on read. Policy is safe for concurrent use.
type Policy struct {
	mu        sync.Mutex
	settings  docsift.SettingsStore
	mode      docsift.Mode
	whitelist []string
}

// LoadPolicy reads the persisted activation state, applying the defaults
// (ModeAll, empty whitelist) for keys that were never written.
func LoadPolicy(ctx context.Context, settings docsift.SettingsStore) (*Policy, error) {
	p := &Policy{settings: settings, mode: docsift.ModeAll}

	v, err := settings.Get(ctx, docsift.SettingMode)
	switch {
	case err == nil:
		if docsift.Mode(v) == docsift.ModeWhitelist {
			p.mode = docsift.ModeWhitelist
		}
	case docsift.ErrorCode(err) != docsift.ENOTFOUND:
		return nil, err
	}

	v, err = settings.Get(ctx, docsift.SettingWhitelist)
	switch {
	case err == nil:
		if err := json.Unmarshal([]byte(v), &p.whitelist); err != nil {
			p.whitelist = nil
		}
	case docsift.ErrorCode(err) != docsift.ENOTFOUND:
		return nil, err
	}

	// A whitelist that emptied out while whitelist mode was persisted must
	// behave as ModeAll.
	if p.mode == docsift.ModeWhitelist && len(p.whitelist) == 0 {
		p.mode = docsift.ModeAll
	}

	return p, nil
}

// Mode returns the current activation mode.
func (p *Policy) Mode() docsift.Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// Whitelist returns a copy of the whitelisted hostnames.
func (p *Policy) Whitelist() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, len(p.whitelist))
	copy(out, p.whitelist)
	return out
}

// IsEnabledForHost reports whether instrumentation may run for host. The
// predicate is evaluated once at attach time; it is not re-evaluated
// mid-session.
func (p *Policy) IsEnabledForHost(host string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode == docsift.ModeAll {
		return true
	}
	return p.containsLocked(host)
}

// EnableHost adds host to the whitelist if absent and forces ModeWhitelist.
func (p *Policy) EnableHost(ctx context.Context, host string) error {
	host = normalizeHost(host)
	if host == "" {
		return docsift.Errorf(docsift.EINVALID, "host required")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.containsLocked(host) {
		p.whitelist = append(p.whitelist, host)
	}
	p.mode = docsift.ModeWhitelist
	return p.persistLocked(ctx)
}

// DisableHost removes host from the whitelist. If the whitelist becomes
// empty the mode reverts to ModeAll.
func (p *Policy) DisableHost(ctx context.Context, host string) error {
	host = normalizeHost(host)

	p.mu.Lock()
	defer p.mu.Unlock()

	kept := p.whitelist[:0]
	for _, h := range p.whitelist {
		if h != host {
			kept = append(kept, h)
		}
	}
	p.whitelist = kept

	if len(p.whitelist) == 0 {
		p.mode = docsift.ModeAll
	}
	return p.persistLocked(ctx)
}

// EnableAll switches to ModeAll, leaving the whitelist untouched so it can
// be re-enabled later without re-adding hosts.
func (p *Policy) EnableAll(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.mode = docsift.ModeAll
	return p.settings.Set(ctx, docsift.SettingMode, string(p.mode))
}

// ClearWhitelist empties the whitelist and forces ModeAll.
func (p *Policy) ClearWhitelist(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.whitelist = nil
	p.mode = docsift.ModeAll
	return p.persistLocked(ctx)
}

// containsLocked reports whitelist membership. Must be called with mu held.
func (p *Policy) containsLocked(host string) bool {
	host = normalizeHost(host)
	for _, h := range p.whitelist {
		if h == host {
			return true
		}
	}
	return false
}

// persistLocked writes both mode and whitelist. Must be called with mu held.
func (p *Policy) persistLocked(ctx context.Context) error {
	list := p.whitelist
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	if err := p.settings.Set(ctx, docsift.SettingWhitelist, string(data)); err != nil {
		return err
	}
	return p.settings.Set(ctx, docsift.SettingMode, string(p.mode))
}

func normalizeHost(host string) string {
	return strings.ToLower(strings.TrimSpace(host))
}
