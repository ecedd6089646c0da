package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/GongyiChuren/docsift"
	"github.com/GongyiChuren/docsift/sqlite"
)

// Watcher runs a discovery session against a live page: attach, sweep,
// optionally run the continuous channels, and return everything discovered.
type Watcher interface {
	Watch(ctx context.Context, pageURL string, deep bool, duration time.Duration) ([]docsift.Item, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Settings   docsift.SettingsStore
	Policy     docsift.Policy
	Downloader docsift.Downloader
	Watcher    Watcher
	Logger     *slog.Logger

	// OpenURL hands a URL to a visible browser. Used as the download
	// fallback for expired links.
	OpenURL func(ctx context.Context, url string) error
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Watch     WatchCmd     `cmd:"" help:"Watch a page and report discovered document links"`
	Get       GetCmd       `cmd:"" help:"Download a document link"`
	Mode      ModeCmd      `cmd:"" help:"Show the current activation mode and whitelist"`
	Allow     AllowCmd     `cmd:"" help:"Whitelist a host (switches to whitelist mode)"`
	Deny      DenyCmd      `cmd:"" help:"Remove a host from the whitelist"`
	EnableAll EnableAllCmd `cmd:"" name:"enable-all" help:"Run discovery on every host"`
	Clear     ClearCmd     `cmd:"" help:"Empty the whitelist and return to all-hosts mode"`
	Deep      DeepCmd      `cmd:"" help:"Toggle the deep discovery preference"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	URL      string        `arg:"" help:"Page URL to watch"`
	Deep     bool          `short:"d" help:"Force deep discovery for this session"`
	Duration time.Duration `default:"20s" help:"How long to keep watching after load"`
	Headful  bool          `help:"Show the browser window"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	URL string `arg:"" help:"Document URL to download"`
	Dir string `short:"o" default:"." help:"Directory to save into"`
}

// ModeCmd is the "mode" subcommand.
type ModeCmd struct{}

// AllowCmd is the "allow" subcommand.
type AllowCmd struct {
	Host string `arg:"" help:"Hostname to whitelist"`
}

// DenyCmd is the "deny" subcommand.
type DenyCmd struct {
	Host string `arg:"" help:"Hostname to remove from the whitelist"`
}

// EnableAllCmd is the "enable-all" subcommand.
type EnableAllCmd struct{}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct{}

// DeepCmd is the "deep" subcommand.
type DeepCmd struct{}
