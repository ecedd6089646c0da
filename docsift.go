// Package docsift discovers downloadable document links in live web pages.
// It attaches a headless browser to a page, taps three discovery channels
// (static DOM, the resource-timing log, and live network traffic), routes
// every candidate through a normalize/classify pipeline, and collects the
// results in a deduplicated, insertion-ordered store.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/).
package docsift
