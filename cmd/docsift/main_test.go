package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/GongyiChuren/docsift/cmd/docsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main backed by a throwaway database file.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "docsift.db")
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns an error when no command is given", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)

		err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help succeeds without touching the database", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "watch")
	})

	t.Run("activation state survives across runs", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		ctx := context.Background()

		stdout := &bytes.Buffer{}
		err := m.Run(ctx, []string{"allow", "courses.example.edu"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Whitelisted courses.example.edu")

		stdout.Reset()
		err = m.Run(ctx, []string{"mode"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Mode: whitelist")
		assert.Contains(t, stdout.String(), "courses.example.edu")

		stdout.Reset()
		err = m.Run(ctx, []string{"deny", "courses.example.edu"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		stdout.Reset()
		err = m.Run(ctx, []string{"mode"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Mode: all")
	})

	t.Run("deep preference toggles across runs", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		ctx := context.Background()

		stdout := &bytes.Buffer{}
		require.NoError(t, m.Run(ctx, []string{"deep"}, stdout, &bytes.Buffer{}))
		assert.Contains(t, stdout.String(), "Deep discovery on")

		stdout.Reset()
		require.NoError(t, m.Run(ctx, []string{"deep"}, stdout, &bytes.Buffer{}))
		assert.Contains(t, stdout.String(), "Deep discovery off")
	})
}
