package wrap

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/kbukum/captionkit/segment"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"whitespace only", "   \t ", 10, nil},
		{"fits", "hello", 10, []string{"hello"}},
		{"scenario", "hello world foo", 10, []string{"hello", "world foo"}},
		{"exact width", "hello worl", 10, []string{"hello worl"}},
		{"break before space at width", "abcde fghij klm", 5, []string{"abcde", "fghij", "klm"}},
		{"trims surrounding space", "  hi   there  ", 5, []string{"hi", "there"}},
		{"force split long token", "abcdefghijkl", 5, []string{"abcde", "fghij", "kl"}},
		{"long token after word", "hi abcdefghij", 5, []string{"hi", "abcde", "fghij"}},
		{"width one", "ab c", 1, []string{"a", "b", "c"}},
		{"non-positive width", "ab", 0, []string{"a", "b"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lines(tc.text, tc.width, segment.Whitespace{})
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Lines(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
			}
		})
	}
}

func TestLinesLogographic(t *testing.T) {
	seg := segment.NewDictionary(segment.NewMaxMatch("今天", "天气", "很好"))
	got := Lines("今天天气很好", 3, seg)
	want := []string{"今天", "天气", "很好"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	// Whitespace rules would have to force-split inside words.
	forced := Lines("今天天气很好", 3, segment.Whitespace{})
	if !reflect.DeepEqual(forced, []string{"今天天", "气很好"}) {
		t.Errorf("unexpected whitespace wrapping %q", forced)
	}
}

func TestWrapperDefaults(t *testing.T) {
	w := New(0, nil)
	if w.MaxChars() != 1 {
		t.Errorf("expected width clamped to 1, got %d", w.MaxChars())
	}
	if _, ok := w.Segmenter().(segment.Whitespace); !ok {
		t.Error("expected whitespace segmenter by default")
	}
	if got := New(10, nil).Wrap("hello world foo"); !reflect.DeepEqual(got, []string{"hello", "world foo"}) {
		t.Errorf("unexpected wrap %q", got)
	}
}

func TestLinesNeverExceedWidth(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abc defg hij  klmnop 今天\t")
	for i := 0; i < 500; i++ {
		n := rng.Intn(80)
		var sb strings.Builder
		for j := 0; j < n; j++ {
			sb.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		text := sb.String()
		width := 1 + rng.Intn(15)

		lines := Lines(text, width, segment.Whitespace{})
		for _, line := range lines {
			if utf8.RuneCountInString(line) > width {
				t.Fatalf("line %q exceeds width %d for input %q", line, width, text)
			}
			if line == "" || strings.TrimSpace(line) != line {
				t.Fatalf("line %q is not trimmed for input %q", line, text)
			}
		}

		// No non-space content is lost or reordered.
		want := strings.Join(strings.Fields(text), "")
		got := strings.Join(strings.Fields(strings.Join(lines, "")), "")
		if got != want {
			t.Fatalf("content mismatch for %q: got %q", text, got)
		}

		again := Lines(text, width, segment.Whitespace{})
		if !reflect.DeepEqual(lines, again) {
			t.Fatalf("wrapping is not deterministic for %q", text)
		}
	}
}
