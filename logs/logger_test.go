package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.With("engine", "bf").Info("test", "hello", "world!")
		if str := buf.String(); !strings.Contains(str, "hello=world!") ||
			!strings.Contains(str, "engine=bf") {
			t.Fatalf("got %q", str)
		}
	})
}

func TestSpanSurvivesWith(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := context.WithValue(context.Background(), SpanKey, Span("foo"))
		logger.With("a", 1).InfoContext(ctx, "bar")
		if !strings.Contains(buf.String(), "span=foo") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestWrapSpan(t *testing.T) {
	errFoo := errors.New("foo")
	if err := WrapSpan(context.Background(), errFoo); err != errFoo {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("bar"))
	err := WrapSpan(ctx, errFoo)
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "span bar") {
		t.Fatalf("got %v", err)
	}
	if WrapSpan(ctx, nil) != nil {
		t.Fatal()
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span-id"); got != "LOGS_SPAN_ID" {
		t.Fatalf("got %s", got)
	}
}
