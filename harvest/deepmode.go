package harvest

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/GongyiChuren/docsift"
)

// DeepMode toggles the two continuous discovery channels (request
// interception, continuous DOM observation) on top of the one-shot sweeps.
// The persisted preference and the live-active flag are reconciled only at
// attach time; toggling while the current host is not activated updates the
// preference without touching the live channels.
type DeepMode struct {
	mu           sync.Mutex
	settings     docsift.SettingsStore
	observer     docsift.Observer
	tap          docsift.RequestTap
	harvester    *Harvester
	logger       *slog.Logger
	active       bool
	tapInstalled bool
	unsubscribe  func()
}

// NewDeepMode creates a controller for one attached page.
func NewDeepMode(settings docsift.SettingsStore, observer docsift.Observer, tap docsift.RequestTap, harvester *Harvester, logger *slog.Logger) *DeepMode {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeepMode{
		settings:  settings,
		observer:  observer,
		tap:       tap,
		harvester: harvester,
		logger:    logger,
	}
}

// Active reports whether the continuous channels are live.
func (d *DeepMode) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// Enable installs the continuous channels and immediately runs one combined
// one-shot sweep. It is idempotent: a second call while active is a no-op.
// The request tap is installed at most once per page and stays installed for
// the page's lifetime.
func (d *DeepMode) Enable(ctx context.Context) error {
	d.mu.Lock()
	if d.active {
		d.mu.Unlock()
		return nil
	}

	if !d.tapInstalled {
		if err := d.tap.Install(ctx, d.harvester.EmitBody); err != nil {
			d.mu.Unlock()
			return err
		}
		d.tapInstalled = true
	}

	unsubscribe, err := d.observer.Subscribe(ctx, func() {
		if err := d.harvester.SweepDOM(ctx); err != nil {
			d.logger.Debug("observer-triggered sweep failed", "err", err)
		}
	})
	if err != nil {
		d.mu.Unlock()
		return err
	}
	d.unsubscribe = unsubscribe
	d.active = true
	d.mu.Unlock()

	return d.harvester.Sweep(ctx)
}

// Disable persists the off preference, tears down the continuous observer,
// and marks the controller inactive. The request tap, once installed, is
// never uninstalled within the page's lifetime.
func (d *DeepMode) Disable(ctx context.Context) error {
	d.mu.Lock()
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
	d.active = false
	d.mu.Unlock()

	return d.settings.Set(ctx, docsift.SettingDeepMode, "false")
}

// Toggle flips the persisted deep-mode preference. When hostEnabled is
// false the live channels are left untouched; the next attach on a
// permitted host picks up the new preference. Returns the new preference.
func (d *DeepMode) Toggle(ctx context.Context, hostEnabled bool) (bool, error) {
	want, err := TogglePreference(ctx, d.settings)
	if err != nil {
		return false, err
	}
	if !hostEnabled {
		return want, nil
	}

	if want {
		return want, d.Enable(ctx)
	}
	return want, d.Disable(ctx)
}

// Preferred reports the persisted deep-mode preference, defaulting to false
// when the key was never set or does not parse.
func Preferred(ctx context.Context, settings docsift.SettingsStore) bool {
	v, err := settings.Get(ctx, docsift.SettingDeepMode)
	if err != nil {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// TogglePreference flips the persisted deep-mode preference and returns the
// new value.
func TogglePreference(ctx context.Context, settings docsift.SettingsStore) (bool, error) {
	next := !Preferred(ctx, settings)
	if err := settings.Set(ctx, docsift.SettingDeepMode, strconv.FormatBool(next)); err != nil {
		return false, err
	}
	return next, nil
}
