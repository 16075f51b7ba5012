package editor

import (
	"context"
	"errors"
	"testing"
)

func TestSystemClipboard_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var c SystemClipboard
	if _, err := c.ReadText(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("read with cancelled context: got %v", err)
	}
	if err := c.WriteText(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Fatalf("write with cancelled context: got %v", err)
	}
}

func TestNormalizeNewlines(t *testing.T) {
	if got := normalizeNewlines("a\r\nb\rc\n"); got != "a\nb\nc\n" {
		t.Fatalf("normalizeNewlines: got %q", got)
	}
}
