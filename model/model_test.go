package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBBox_VerticalCenter(t *testing.T) {
	b := NewBBox(10, 20, 100, 10)

	if got := b.VerticalCenter(); got != 25 {
		t.Errorf("expected vertical center 25, got %v", got)
	}

	if b.Top() != 20 || b.Bottom() != 30 {
		t.Errorf("expected top 20 bottom 30, got %v and %v", b.Top(), b.Bottom())
	}
}

func TestNewBBoxFromCorners(t *testing.T) {
	b := NewBBoxFromCorners(110, 30, 10, 20)

	if b.X != 10 || b.Y != 20 || b.Width != 100 || b.Height != 10 {
		t.Errorf("unexpected bbox from swapped corners: %+v", b)
	}

	if !b.IsValid() {
		t.Error("expected valid bbox")
	}
}

func TestHeadingLevel_String(t *testing.T) {
	tests := []struct {
		level HeadingLevel
		want  string
	}{
		{LevelTitle, "Title"},
		{LevelH1, "H1"},
		{LevelH2, "H2"},
		{LevelH3, "H3"},
		{LevelUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("level %d: expected %q, got %q", int(tt.level), tt.want, got)
		}
	}
}

func TestLevelForDepth_Clamping(t *testing.T) {
	tests := []struct {
		depth int
		want  HeadingLevel
	}{
		{0, LevelH1},
		{1, LevelH1},
		{2, LevelH2},
		{3, LevelH3},
		{4, LevelH3},
		{9, LevelH3},
	}

	for _, tt := range tests {
		if got := LevelForDepth(tt.depth); got != tt.want {
			t.Errorf("depth %d: expected %v, got %v", tt.depth, tt.want, got)
		}
	}
}

func TestOutlineEntry_JSONLevel(t *testing.T) {
	entry := OutlineEntry{Level: LevelH2, Text: "Background", Page: 2}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if !strings.Contains(string(data), `"level":"H2"`) {
		t.Errorf("expected level to serialize as H2, got %s", data)
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Executive Summary", "Executive Summary"},
		{"interior whitespace", "Executive \t Summary", "Executive Summary"},
		{"surrounding whitespace", "  1. Overview \n", "1. Overview"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"Executive   Summary",
		"  Chapter\tOne  ",
		"déjà vu",
		"",
	}

	for _, in := range inputs {
		once := NormalizeText(in)
		twice := NormalizeText(once)
		if once != twice {
			t.Errorf("normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
