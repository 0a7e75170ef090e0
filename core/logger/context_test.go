package logger

import (
	"context"
	"testing"
	"time"
)

func TestBuildRIDFormat(t *testing.T) {
	if rid := BuildRID(42, 7, 9); rid != "42:7:9" {
		t.Fatalf("rid = %q", rid)
	}
}

func TestRIDRoundTrip(t *testing.T) {
	ctx := WithRID(context.Background(), "rid-1")
	if got := RIDFrom(ctx); got != "rid-1" {
		t.Fatalf("rid = %q", got)
	}
	if got := RIDFrom(context.Background()); got != "" {
		t.Fatalf("empty context rid = %q", got)
	}
	var missing context.Context
	if got := RIDFrom(missing); got != "" {
		t.Fatalf("nil context rid = %q", got)
	}
}

func TestUpdateMetaRoundTrip(t *testing.T) {
	ctx := WithUpdateMeta(context.Background(), 5, 11, 22)
	if UpdateIDFrom(ctx) != 5 || UserIDFrom(ctx) != 11 || ChatIDFrom(ctx) != 22 {
		t.Fatal("update meta did not round-trip")
	}
}

func TestSanitizeStripsControlRunes(t *testing.T) {
	in := "he\x00llo\tworld\n\x1b[31m"
	got := Sanitize(in)
	if got != "hello\tworld\n[31m" {
		t.Fatalf("sanitized = %q", got)
	}
}

func TestSanitizeLimit(t *testing.T) {
	if got := SanitizeLimit("abcdef", 3); got != "abc" {
		t.Fatalf("limited = %q", got)
	}
	if got := SanitizeLimit("abc", 0); got != "" {
		t.Fatalf("zero limit = %q", got)
	}
	if got := SanitizeLimit("héllo", 2); got != "hé" {
		t.Fatalf("rune limit = %q", got)
	}
}

func TestStatus(t *testing.T) {
	if Status(nil) != "ok" {
		t.Fatal("nil error should map to ok")
	}
	if Status(context.Canceled) != "fail" {
		t.Fatal("error should map to fail")
	}
}

func TestRoundMS(t *testing.T) {
	if got := RoundMS(1499 * time.Microsecond); got != time.Millisecond {
		t.Fatalf("rounded = %v", got)
	}
	if got := RoundMS(-time.Second); got != 0 {
		t.Fatalf("negative rounded = %v", got)
	}
}
