package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildscope/handover-insight/internal/logger"
)

func TestStartHandlesNewTranscript(t *testing.T) {
	dir := t.TempDir()
	handled := make(chan string, 1)

	w, err := New(dir, func(ctx context.Context, path string) error {
		handled <- path
		return nil
	}, logger.New("error"), 1)
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the watch loop a moment before triggering events
	time.Sleep(100 * time.Millisecond)

	transcriptPath := filepath.Join(dir, "meeting.txt")
	require.NoError(t, os.WriteFile(transcriptPath, []byte("Project Name: Test"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.pdf"), []byte("ignored"), 0644))

	select {
	case path := <-handled:
		assert.Equal(t, transcriptPath, path)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called for new transcript")
	}

	// The pdf must not produce a second handler call
	select {
	case path := <-handled:
		t.Fatalf("unexpected handler call for %s", path)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	_, err := New("/nonexistent/path", func(ctx context.Context, path string) error { return nil },
		logger.New("error"), 1)
	assert.Error(t, err)
}
