// Package util provides parsing helpers for fuzzball parameters.
package util

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// MaxColor is the largest accepted RGB value.
const MaxColor = 0xFFFFFF

// ParseColor parses a base colour given as 0xRRGGBB, #RRGGBB, RRGGBB or an
// SVG colour name ("orange", "DarkSlateBlue"). Names are case-insensitive.
// Unknown names are reported with a suggestion for the closest known name.
func ParseColor(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("empty color")
	}

	if hex, ok := stripHexPrefix(trimmed); ok || isHex(trimmed) {
		if !ok {
			hex = trimmed
		}
		v, err := strconv.ParseInt(hex, 16, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		if v < 0 || v > MaxColor {
			return 0, fmt.Errorf("color %q out of range (0x000000 to 0xFFFFFF)", s)
		}
		return int(v), nil
	}

	name := strings.ToLower(trimmed)
	if c, ok := colornames.Map[name]; ok {
		return RGB(c), nil
	}

	if suggestion := findClosestColorName(name); suggestion != "" {
		return 0, fmt.Errorf("unknown color %q, did you mean %q?", s, suggestion)
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// FormatColor renders an RGB value as #RRGGBB.
func FormatColor(rgb int) string {
	return fmt.Sprintf("#%06X", rgb&MaxColor)
}

// RGB packs the red, green and blue channels of c into 0xRRGGBB.
// The colour is taken as non-premultiplied; alpha is ignored.
func RGB(c color.Color) int {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R)<<16 | int(n.G)<<8 | int(n.B)
}

// ColorNames returns the known colour names in alphabetical order.
func ColorNames() []string {
	names := make([]string, len(colornames.Names))
	copy(names, colornames.Names)
	return names
}

// ParseAlpha parses a decimal alpha value in [0, 255].
func ParseAlpha(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid alpha %q: must be a number", s)
	}
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("alpha %d out of range (0 to 255)", v)
	}
	return v, nil
}

// ParseDiameter parses a positive diameter in pixels.
func ParseDiameter(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid diameter %q: must be a number", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("diameter must be greater than 0, got %d", v)
	}
	return v, nil
}

func stripHexPrefix(s string) (string, bool) {
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return s[2:], true
	case strings.HasPrefix(s, "#"):
		return s[1:], true
	}
	return s, false
}

// isHex reports whether s looks like a bare hex colour. Six digits are
// required so names such as "bad" are not read as numbers.
func isHex(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// findClosestColorName finds the closest colour name using Levenshtein distance.
// Returns empty string if no close match is found (distance > 3).
func findClosestColorName(input string) string {
	const maxDistance = 3
	bestDistance := maxDistance + 1
	var bestMatch string

	// colornames.Names is sorted, so ties resolve alphabetically.
	for _, name := range colornames.Names {
		distance := levenshteinDistance(input, name)
		if distance < bestDistance {
			bestDistance = distance
			bestMatch = name
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
