package layout

import (
	"strings"
	"unicode/utf8"
)

// helveticaWidths holds glyph advances for ASCII 32..126 in 1/1000 em.
var helveticaWidths = [...]int{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278, // ' ' .. '/'
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, // '0' .. '9'
	278, 278, 584, 584, 584, 556, 1015, // ':' .. '@'
	667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, // 'A' .. 'M'
	722, 778, 667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, // 'N' .. 'Z'
	278, 278, 278, 469, 556, 333, // '[' .. '`'
	556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, // 'a' .. 'm'
	556, 556, 556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, // 'n' .. 'z'
	334, 260, 334, 584, // '{' .. '~'
}

const (
	defaultGlyphWidth = 556
	boldFactor        = 1.07
	lineSpacing       = 1.25
)

func glyphWidth(r rune) int {
	if r >= 32 && r <= 126 {
		return helveticaWidths[r-32]
	}
	return defaultGlyphWidth
}

// TextWidth estimates the rendered width of s in millimetres.
func TextWidth(s string, f Font) float64 {
	var units int
	for _, r := range s {
		units += glyphWidth(r)
	}
	w := float64(units) / 1000 * f.Size * PtToMm
	if f.Bold() {
		w *= boldFactor
	}
	return w
}

// LineHeight is the height of one line of text set in f.
func LineHeight(f Font) float64 {
	return f.Size * PtToMm * lineSpacing
}

// Wrap breaks s into lines no wider than width. Words longer than a line
// are split between characters. Wrap always returns at least one line.
func Wrap(s string, width float64, f Font) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line string
	for _, word := range words {
		for TextWidth(word, f) > width && utf8.RuneCountInString(word) > 1 {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			head, tail := splitToWidth(word, width, f)
			lines = append(lines, head)
			word = tail
		}
		switch {
		case line == "":
			line = word
		case TextWidth(line+" "+word, f) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	return append(lines, line)
}

// splitToWidth returns the longest prefix of word that fits width (at least one rune).
func splitToWidth(word string, width float64, f Font) (head, tail string) {
	var w float64
	for i, r := range word {
		gw := TextWidth(string(r), f)
		if w+gw > width && i > 0 {
			return word[:i], word[i:]
		}
		w += gw
	}
	return word, ""
}
