package transcription

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestEventJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Event
	}{
		{`{"text":"hello","isFinal":true,"languageTag":"en-US"}`, Final("hello", "en-US")},
		{`{"text":null,"isFinal":false,"languageTag":"en-US"}`, Partial("", "en-US")},
		{`{"isFinal":true}`, Final("", "")},
	}
	for _, tc := range tests {
		var got Event
		if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestTrimmed(t *testing.T) {
	if got := Partial("  hi  ", "").Trimmed(); got != "hi" {
		t.Errorf("got %q", got)
	}
}

func TestChannelSource(t *testing.T) {
	ch := make(ChannelSource, 1)
	ch <- Final("x", "en")
	close(ch)

	var src Source = ch
	var got []Event
	for ev := range src.Events() {
		got = append(got, ev)
	}
	if len(got) != 1 || got[0].Text != "x" {
		t.Errorf("unexpected events %+v", got)
	}
}

func TestLineSource(t *testing.T) {
	input := strings.Join([]string{
		`{"text":"hel","isFinal":false,"languageTag":"en-US"}`,
		``,
		`not json`,
		`{"text":null,"isFinal":true}`,
		`{"text":"hello","isFinal":true}`,
	}, "\n")

	src := NewLineSource(context.Background(), strings.NewReader(input), nil)
	var got []Event
	for ev := range src.Events() {
		got = append(got, ev)
	}

	want := []Event{
		{Text: "hel", Language: "en-US"},
		{Text: "", IsFinal: true},
		{Text: "hello", IsFinal: true},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
	if err := src.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLineSourceStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := NewLineSource(ctx, strings.NewReader("{\"text\":\"a\"}\n{\"text\":\"b\"}\n"), nil)
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-src.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("source did not close after cancel")
		}
	}
}
