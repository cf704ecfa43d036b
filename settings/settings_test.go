package settings

import (
	"encoding/json"
	"testing"
)

type fakeScript map[string]bool

func (f fakeScript) Logographic(tag string) bool { return f[tag] }

var script = fakeScript{"zh-CN": true, "zh": true}

func TestWidthChars(t *testing.T) {
	tests := []struct {
		width       Width
		logographic bool
		want        int
		ok          bool
	}{
		{"narrow", false, 30, true},
		{"narrow", true, 10, true},
		{"Medium", false, 38, true},
		{"medium", true, 14, true},
		{"wide", false, 44, true},
		{"wide", true, 18, true},
		{"25", false, 25, true},
		{"25.0", true, 25, true},
		{"25.5", false, 0, false},
		{"0", false, 0, false},
		{"-3", false, 0, false},
		{"huge", false, 0, false},
		{"", false, 0, false},
	}
	for _, tc := range tests {
		got, ok := tc.width.Chars(tc.logographic)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Width(%q).Chars(%v) = (%d, %v), want (%d, %v)", tc.width, tc.logographic, got, ok, tc.want, tc.ok)
		}
	}
}

func TestWidthUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Width
	}{
		{`{"lineWidth": 30}`, "30"},
		{`{"lineWidth": "wide"}`, "wide"},
		{`{"lineWidth": " narrow "}`, "narrow"},
		{`{"lineWidth": null}`, ""},
		{`{"lineWidth": true}`, "true"},
		{`{}`, ""},
	}
	for _, tc := range tests {
		var snap Snapshot
		if err := json.Unmarshal([]byte(tc.in), &snap); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if snap.LineWidth != tc.want {
			t.Errorf("%s: got %q, want %q", tc.in, snap.LineWidth, tc.want)
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	got, problems := Resolve(Snapshot{}, Settings{}, script)
	if len(problems) != 0 {
		t.Errorf("unexpected problems %v", problems)
	}
	want := Settings{MaxCharsPerLine: 45, MaxLines: DefaultLineCount, Language: DefaultLanguage, HistoryCapacity: DefaultHistoryCapacity}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	zh := Defaults("zh-CN", script)
	if zh.MaxCharsPerLine != 14 {
		t.Errorf("expected logographic default width 14, got %d", zh.MaxCharsPerLine)
	}
}

func TestResolvePresetFollowsScript(t *testing.T) {
	en, _ := Resolve(Snapshot{LineWidth: "medium", LineCount: 2, Language: "en-US"}, Settings{}, script)
	if en.MaxCharsPerLine != 38 || en.MaxLines != 2 {
		t.Fatalf("unexpected %+v", en)
	}

	zh, problems := Resolve(Snapshot{Language: "zh-CN"}, en, script)
	if len(problems) != 0 {
		t.Errorf("unexpected problems %v", problems)
	}
	if zh.MaxCharsPerLine != 14 {
		t.Errorf("expected medium preset to re-resolve to 14 for zh, got %d", zh.MaxCharsPerLine)
	}
	if zh.MaxLines != 2 {
		t.Errorf("expected line count to carry over, got %d", zh.MaxLines)
	}
	if !en.LanguageChanged(zh) {
		t.Error("expected language change to be detected")
	}
}

func TestResolveMalformedFallsBackToLastKnownGood(t *testing.T) {
	prev := Settings{Width: "30", MaxCharsPerLine: 30, MaxLines: 4, Language: "en-US", HistoryCapacity: 5}

	got, problems := Resolve(Snapshot{LineWidth: "banana", LineCount: -2, HistoryCapacity: -1}, prev, script)
	if got.MaxCharsPerLine != 30 || got.Width != "30" {
		t.Errorf("expected width fallback to 30, got %+v", got)
	}
	if got.MaxLines != 4 {
		t.Errorf("expected line count fallback to 4, got %d", got.MaxLines)
	}
	if got.HistoryCapacity != 5 {
		t.Errorf("expected history capacity fallback to 5, got %d", got.HistoryCapacity)
	}
	if len(problems) != 3 {
		t.Errorf("expected 3 problems, got %v", problems)
	}
}

func TestResolveMalformedWithoutHistoryUsesDefaults(t *testing.T) {
	got, problems := Resolve(Snapshot{LineWidth: "??", LineCount: -1}, Settings{}, script)
	if got.MaxCharsPerLine != DefaultPreset.Standard {
		t.Errorf("expected default width, got %d", got.MaxCharsPerLine)
	}
	if got.MaxLines != DefaultLineCount {
		t.Errorf("expected default line count, got %d", got.MaxLines)
	}
	if len(problems) != 2 {
		t.Errorf("expected 2 problems, got %v", problems)
	}
}

func TestLayoutChanged(t *testing.T) {
	a := Settings{MaxCharsPerLine: 10, MaxLines: 2, Language: "en"}
	b := a
	if a.LayoutChanged(b) {
		t.Error("identical settings should not report a layout change")
	}
	b.MaxLines = 3
	if !a.LayoutChanged(b) {
		t.Error("expected layout change")
	}
	if a.LanguageChanged(Settings{Language: "en-GB"}) {
		t.Error("same base language should not count as a change")
	}
}
