package util

import (
	"image/color"
	"sort"
	"strings"
	"testing"
)

func TestParseColor_Valid(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"0xFF0000", 0xFF0000},
		{"0xff8800", 0xFF8800},
		{"0X00FF00", 0x00FF00},
		{"#0000FF", 0x0000FF},
		{"ABCDEF", 0xABCDEF},
		{"0x0", 0},
		{"0xFFF", 0xFFF},
		{" 0xFFFFFF ", 0xFFFFFF},
		{"red", 0xFF0000},
		{"Orange", 0xFFA500},
		{"DARKSLATEBLUE", 0x483D8B},
		{"white", 0xFFFFFF},
	}

	for _, tc := range tests {
		result, err := ParseColor(tc.input)
		if err != nil {
			t.Errorf("ParseColor(%q) returned error: %v", tc.input, err)
			continue
		}
		if result != tc.expected {
			t.Errorf("ParseColor(%q) = 0x%06X, want 0x%06X", tc.input, result, tc.expected)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	tests := []string{
		"",
		"0x1000000",
		"#GGGGGG",
		"0x",
		"not-a-color",
		"-0x10",
	}

	for _, input := range tests {
		if _, err := ParseColor(input); err == nil {
			t.Errorf("ParseColor(%q) should return error", input)
		}
	}
}

func TestParseColor_Suggestion(t *testing.T) {
	_, err := ParseColor("oragne")
	if err == nil {
		t.Fatal("expected error for misspelled name")
	}
	if !strings.Contains(err.Error(), `did you mean "orange"`) {
		t.Errorf("expected suggestion for orange, got: %v", err)
	}
}

func TestFormatColor(t *testing.T) {
	if got := FormatColor(0xFF8800); got != "#FF8800" {
		t.Errorf("FormatColor = %s, want #FF8800", got)
	}
	if got := FormatColor(0); got != "#000000" {
		t.Errorf("FormatColor = %s, want #000000", got)
	}
}

func TestRGB(t *testing.T) {
	if got := RGB(color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}); got != 0x123456 {
		t.Errorf("RGB = 0x%06X, want 0x123456", got)
	}
	if got := RGB(color.NRGBA{R: 0xFF, G: 0x80, B: 0x00, A: 0x40}); got != 0xFF8000 {
		t.Errorf("RGB ignores alpha: got 0x%06X, want 0xFF8000", got)
	}
}

func TestColorNames_Sorted(t *testing.T) {
	names := ColorNames()
	if len(names) == 0 {
		t.Fatal("expected colour names")
	}
	if !sort.StringsAreSorted(names) {
		t.Error("colour names should be sorted")
	}
	names[0] = "mutated"
	if ColorNames()[0] == "mutated" {
		t.Error("ColorNames should return a copy")
	}
}

func TestParseAlpha(t *testing.T) {
	for _, ok := range []string{"0", "128", "255", " 7 "} {
		if _, err := ParseAlpha(ok); err != nil {
			t.Errorf("ParseAlpha(%q) returned error: %v", ok, err)
		}
	}
	for _, bad := range []string{"-1", "256", "abc", ""} {
		if _, err := ParseAlpha(bad); err == nil {
			t.Errorf("ParseAlpha(%q) should return error", bad)
		}
	}
}

func TestParseDiameter(t *testing.T) {
	if v, err := ParseDiameter("32"); err != nil || v != 32 {
		t.Errorf("ParseDiameter(32) = %d, %v", v, err)
	}
	for _, bad := range []string{"0", "-3", "x"} {
		if _, err := ParseDiameter(bad); err == nil {
			t.Errorf("ParseDiameter(%q) should return error", bad)
		}
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"red", "red", 0},
		{"oragne", "orange", 2},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		if got := levenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
