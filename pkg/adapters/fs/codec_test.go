package fs

import (
	"strings"
	"testing"
	"time"

	"github.com/padvault/pad/pkg/core"
)

func TestCodecRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	in := core.Notepad{
		ID:        7,
		Name:      "Meeting notes",
		Content:   "# Agenda\n\n- budget\n- hiring\n",
		CreatedAt: ts,
		UpdatedAt: ts.Add(time.Hour),
	}

	raw, err := encodeRecord(in)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !strings.HasPrefix(string(raw), "---\n") {
		t.Errorf("record must start with a frontmatter fence")
	}

	out, err := decodeRecord(raw, 7)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if out.Name != in.Name || out.Content != in.Content {
		t.Errorf("round trip mismatch: %+v", out)
	}
	if !out.CreatedAt.Equal(in.CreatedAt) || !out.UpdatedAt.Equal(in.UpdatedAt) {
		t.Errorf("timestamps lost in round trip")
	}
}

func TestCodecRoundTrip_DashesInName(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	cases := []struct {
		label string
		name  string
	}{
		{"Mid Name", "a---b"},
		{"Leading", "---dashes"},
		{"Trailing", "dashes---"},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			in := core.Notepad{ID: 3, Name: tc.name, Content: "body", CreatedAt: ts, UpdatedAt: ts}
			raw, err := encodeRecord(in)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			out, err := decodeRecord(raw, 3)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if out.Name != tc.name || out.Content != "body" {
				t.Errorf("round trip mangled record: name %q content %q", out.Name, out.Content)
			}
		})
	}
}

func TestCodecRoundTrip_ContentLeadingNewlines(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	for _, content := range []string{"\r\nwindows first", "\n\nblank lead", "---\nnot a fence"} {
		in := core.Notepad{ID: 5, Name: "n", Content: content, CreatedAt: ts, UpdatedAt: ts}
		raw, err := encodeRecord(in)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		out, err := decodeRecord(raw, 5)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if out.Content != content {
			t.Errorf("content %q came back as %q", content, out.Content)
		}
	}
}

func TestDecodeRecord_Malformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"No Frontmatter", "just some text"},
		{"Unterminated Fence", "---\nname: x\n"},
		{"Bad Yaml", "---\nname: [unclosed\n---\nbody"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decodeRecord([]byte(tc.raw), 1); err == nil {
				t.Errorf("expected decode error for %q", tc.raw)
			}
		})
	}
}

func TestParseRecordFilename(t *testing.T) {
	cases := []struct {
		in string
		id int64
		ok bool
	}{
		{"1.md", 1, true},
		{"42.md", 42, true},
		{"0.md", 0, false},
		{"-3.md", 0, false},
		{"notes.md", 0, false},
		{"7.txt", 0, false},
		{"pad-tmp-123", 0, false},
	}
	for _, tc := range cases {
		id, ok := parseRecordFilename(tc.in)
		if ok != tc.ok || id != tc.id {
			t.Errorf("parseRecordFilename(%q) = (%d, %v), want (%d, %v)", tc.in, id, ok, tc.id, tc.ok)
		}
	}
}

func TestRecordFilename(t *testing.T) {
	if got := recordFilename(9); got != "9.md" {
		t.Errorf("recordFilename(9) = %q", got)
	}
}
