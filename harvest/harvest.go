// Package harvest provides discovery orchestration for an attached page.
// It coordinates the one-shot sweeps (static DOM, resource-timing log), the
// deep-mode channels (continuous DOM observation, request interception), the
// deduplicating item store, and the site activation policy.
package harvest
