package trace

import (
	"context"
	"testing"
)

func TestSpanSequenceIncrementsPerOutboundCall(t *testing.T) {
	ctx := WithRequestAndSpan(context.Background(), "req-123", 0)

	if got := CurrentSpanID(ctx); got != "0" {
		t.Fatalf("expected inbound span 0, got %q", got)
	}

	reqID, spanID := NextSpanID(ctx)
	if reqID != "req-123" || spanID != "1" {
		t.Fatalf("expected (req-123, 1), got (%q, %q)", reqID, spanID)
	}

	reqID, spanID = NextSpanID(ctx)
	if reqID != "req-123" || spanID != "2" {
		t.Fatalf("expected (req-123, 2), got (%q, %q)", reqID, spanID)
	}

	if got := CurrentSpanID(ctx); got != "2" {
		t.Fatalf("expected current span 2 after two outbound calls, got %q", got)
	}
}

func TestNextSpanIDOutsideMiddlewareFallsBack(t *testing.T) {
	reqID, spanID := NextSpanID(context.Background())
	if reqID == "" {
		t.Fatal("expected a generated request id outside the middleware")
	}
	if spanID != "1" {
		t.Fatalf("expected fallback span 1, got %q", spanID)
	}
}

func TestGenerateIDIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if id == "" {
			t.Fatal("expected non-empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
