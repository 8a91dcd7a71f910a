package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// waitForItems reads events until one parses to want items or the timeout hits.
// A single save can produce several events (truncate, then write), and the
// early ones may see a half-written file.
func waitForItems(t *testing.T, w *Watcher, want int) Event {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				t.Fatal("Events closed before expected update")
			}
			if event.Err == nil && len(event.Items) == want {
				return event
			}
		case <-timeout:
			t.Fatalf("Timeout waiting for catalog with %d items", want)
		}
	}
}

func TestWatcherCatalogUpdates(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{
			name: "single item",
			content: `## Lake
Still water.`,
			expected: 1,
		},
		{
			name: "several items",
			content: `## Lake
Still water.
## Desert
Heat haze.
## Reef
![](reef)
Fish.`,
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			catalog := filepath.Join(tempDir, "catalog.md")
			if err := os.WriteFile(catalog, []byte("## Start\nFirst version."), 0644); err != nil {
				t.Fatalf("Failed to write catalog: %v", err)
			}

			w, err := New(catalog)
			if err != nil {
				t.Fatalf("Failed to create watcher: %v", err)
			}
			defer w.Stop()
			w.Start()

			if err := os.WriteFile(catalog, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to rewrite catalog: %v", err)
			}

			event := waitForItems(t, w, tt.expected)
			if event.Path != w.Path() {
				t.Errorf("Expected path %s, got %s", w.Path(), event.Path)
			}
		})
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	tempDir := t.TempDir()
	catalog := filepath.Join(tempDir, "catalog.md")
	if err := os.WriteFile(catalog, []byte("## Start\nFirst version."), 0644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}

	w, err := New(catalog)
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Stop()
	w.Start()

	other := filepath.Join(tempDir, "notes.md")
	if err := os.WriteFile(other, []byte("## Other\nNot the catalog."), 0644); err != nil {
		t.Fatalf("Failed to write other file: %v", err)
	}

	select {
	case event := <-w.Events:
		t.Errorf("Unexpected event for %s", event.Path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherReportsParseErrors(t *testing.T) {
	tempDir := t.TempDir()
	catalog := filepath.Join(tempDir, "catalog.md")
	if err := os.WriteFile(catalog, []byte("## Start\nFirst version."), 0644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}

	w, err := New(catalog)
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Stop()
	w.Start()

	if err := os.WriteFile(catalog, []byte("no headings at all"), 0644); err != nil {
		t.Fatalf("Failed to rewrite catalog: %v", err)
	}

	select {
	case event := <-w.Events:
		if event.Err == nil {
			t.Errorf("Expected parse error, got %d items", len(event.Items))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout waiting for catalog event")
	}
}

func TestNewFailsForMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope", "catalog.md"))
	if err == nil {
		t.Fatal("Expected error watching a missing directory")
	}
}
