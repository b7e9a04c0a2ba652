package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	checkout "jsoncheck/internal/modules/check/adapter/out"
	apperrors "jsoncheck/internal/platform/errors"
)

func TestOSFileSourceReadsContent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "a.json")
	if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	got, err := checkout.NewOSFileSource().Read(context.Background(), path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "[]\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestOSFileSourceMissingIsNotFound(t *testing.T) {
	t.Parallel()
	_, err := checkout.NewOSFileSource().Read(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOSFileSourceDirectoryIsPlainError(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "dir.json")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	_, err := checkout.NewOSFileSource().Read(context.Background(), dir)
	if err == nil {
		t.Fatalf("expected read error for directory")
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("directory must not be reported as missing")
	}
}
