package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitUpdate(t *testing.T, updates <-chan Update) Update {
	t.Helper()
	select {
	case u, ok := <-updates:
		if !ok {
			t.Fatal("updates channel closed")
		}
		return u
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for catalog update")
	}
	return Update{}
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.yaml")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := Watch(ctx, path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	small := "version: 1\npinned:\n  - {id: a, name: A, url: https://a.example}\n"
	if err := os.WriteFile(path, []byte(small), 0600); err != nil {
		t.Fatal(err)
	}
	u := waitUpdate(t, updates)
	if u.Err != nil || u.Catalog.Len() != 1 || u.Source != SourceFile {
		t.Fatalf("update = %+v, want 1 site from file", u)
	}

	if err := os.WriteFile(path, []byte("version: 7\n"), 0600); err != nil {
		t.Fatal(err)
	}
	u = waitUpdate(t, updates)
	if u.Err == nil || u.Catalog != nil {
		t.Fatalf("update = %+v, want error for invalid file", u)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	u = waitUpdate(t, updates)
	if u.Err != nil || u.Source != SourceDefault || u.Catalog.Len() != 8 {
		t.Fatalf("update after remove = %+v, want built-in catalog", u)
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	updates, err := Watch(ctx, filepath.Join(t.TempDir(), "sites.yaml"), 0)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	cancel()

	select {
	case _, ok := <-updates:
		if ok {
			t.Error("received update after cancel, want closed channel")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("updates channel not closed after cancel")
	}
}

func TestWatchRejectsEmptyPath(t *testing.T) {
	if _, err := Watch(context.Background(), "", 0); err == nil {
		t.Error("Watch(\"\") succeeded, want error")
	}
}
