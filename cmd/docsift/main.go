package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/GongyiChuren/docsift/harvest"
	dochttp "github.com/GongyiChuren/docsift/http"
	docrod "github.com/GongyiChuren/docsift/rod"
	docslog "github.com/GongyiChuren/docsift/slog"
	"github.com/GongyiChuren/docsift/sqlite"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsift"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsift --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSIFT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	deps.DB = m.DB
	deps.Settings = sqlite.NewSettingsService(m.DB)

	policy, err := harvest.LoadPolicy(ctx, deps.Settings)
	if err != nil {
		return fmt.Errorf("failed to load activation state: %w", err)
	}
	deps.Policy = policy

	// Wire command-specific dependencies based on command
	if cmd == "watch" {
		deps.Watcher = &browserWatcher{
			settings: deps.Settings,
			logger:   deps.Logger,
			headful:  cli.Watch.Headful,
		}
	}

	if cmd == "get" {
		deps.Downloader = docslog.NewLoggingDownloader(
			dochttp.NewDownloader(cli.Get.Dir), deps.Logger)
		deps.OpenURL = openInBrowser
	}

	return kongCtx.Run(deps)
}

// openInBrowser launches a visible browser on url and leaves it running so
// the user keeps the tab after the command exits.
func openInBrowser(ctx context.Context, url string) error {
	b, err := docrod.NewBrowser(docrod.WithHeadful())
	if err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	return b.OpenURL(ctx, url)
}

func defaultDBPath() string {
	if path := os.Getenv("DOCSIFT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docsift.db"
	}
	dir := filepath.Join(home, ".docsift")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docsift.db")
}
