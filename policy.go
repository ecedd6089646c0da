package docsift

import "context"

// Mode selects which hosts instrumentation runs on.
type Mode string

// Activation modes.
const (
	// ModeAll runs instrumentation on every host.
	ModeAll Mode = "all"

	// ModeWhitelist restricts instrumentation to whitelisted hosts.
	ModeWhitelist Mode = "whitelist"
)

// Persisted settings keys. These three keys are the entire durable state;
// everything else is transient per attached page.
const (
	SettingMode      = "mode"      // string Mode, default "all"
	SettingWhitelist = "whitelist" // JSON list of hostnames, default empty
	SettingDeepMode  = "deepMode"  // boolean, default false
)

// SettingsStore persists key/value settings across runs.
type SettingsStore interface {
	// Get returns the value stored under key.
	// Returns ENOTFOUND if the key has never been set.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}

// Policy is the site activation state machine gating whether any
// instrumentation runs for a host. The predicate is evaluated once when a
// page is attached; it is not re-evaluated mid-session.
type Policy interface {
	// Mode returns the current activation mode.
	Mode() Mode

	// Whitelist returns the whitelisted hostnames. Insertion order is
	// irrelevant; membership is what matters.
	Whitelist() []string

	// IsEnabledForHost reports whether instrumentation may run for host:
	// always true in ModeAll, otherwise true iff host is whitelisted.
	IsEnabledForHost(host string) bool

	// EnableHost adds host to the whitelist (if absent) and forces
	// ModeWhitelist.
	EnableHost(ctx context.Context, host string) error

	// DisableHost removes host from the whitelist. If the whitelist becomes
	// empty the mode reverts to ModeAll; this is enforced on removal, not
	// lazily on read.
	DisableHost(ctx context.Context, host string) error

	// EnableAll switches to ModeAll. The whitelist is left untouched so it
	// can be re-enabled later without re-adding hosts.
	EnableAll(ctx context.Context) error

	// ClearWhitelist empties the whitelist and forces ModeAll.
	ClearWhitelist(ctx context.Context) error
}
