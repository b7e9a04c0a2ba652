package bootstrap_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jsoncheck/internal/bootstrap"
	checkinadapter "jsoncheck/internal/modules/check/adapter/in"
	"jsoncheck/internal/platform/config"
	apperrors "jsoncheck/internal/platform/errors"
	"jsoncheck/internal/platform/logging"
)

func TestNewWiresHandlers(t *testing.T) {
	t.Parallel()
	app, err := bootstrap.New(config.Config{IndentSize: 4, SortKeys: true}, logging.Discard())
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	req, err := checkinadapter.DecodeRequest(strings.NewReader(`{"command":"check","files":["notes.txt"]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp := app.CheckProtocol.Respond(context.Background(), req)
	if !resp.Success || resp.Output != "All 0 JSON file(s) are valid and properly formatted" {
		t.Fatalf("unexpected protocol result %+v", resp)
	}

	rendered, err := app.ManifestCLI.Render(context.Background(), "json")
	if err != nil {
		t.Fatalf("render manifest: %v", err)
	}
	if !strings.Contains(rendered.Content, `"INDENT_SIZE": "4"`) || !strings.Contains(rendered.Content, `"SORT_KEYS": "true"`) {
		t.Fatalf("manifest environment does not follow config:\n%s", rendered.Content)
	}
}

func TestNewRejectsInvalidIndent(t *testing.T) {
	t.Parallel()
	if _, err := bootstrap.New(config.Config{IndentSize: 0}, nil); !errors.Is(err, apperrors.ErrInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
}
