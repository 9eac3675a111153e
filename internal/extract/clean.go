package extract

import (
	"regexp"
	"strings"
)

var (
	wsRe          = regexp.MustCompile(`\s+`)
	camelJoinRe   = regexp.MustCompile(`([a-z])([A-Z])`)
	punctJoinRe   = regexp.MustCompile(`([.!?])([A-Z])`)
	pageNumberRe  = regexp.MustCompile(`(?m)\b\d+\s*$`)
	bulletGlyphRe = regexp.MustCompile(`[•·▪▫◦‣⁃]\s*`)
	dashBulletRe  = regexp.MustCompile(`(?m)^\s*[-*+]\s*`)
)

// CleanText repairs common PDF extraction artifacts: collapsed or missing
// spacing at word joins, stray page numbers, and the zoo of bullet glyphs
// different resume templates use. Whitespace is collapsed first, which
// flattens page text into one line; the parser's single-line mode exists for
// exactly this shape of input.
func CleanText(text string) string {
	text = wsRe.ReplaceAllString(text, " ")
	text = camelJoinRe.ReplaceAllString(text, "$1 $2")
	text = punctJoinRe.ReplaceAllString(text, "$1 $2")
	text = pageNumberRe.ReplaceAllString(text, "")
	text = bulletGlyphRe.ReplaceAllString(text, "• ")
	text = dashBulletRe.ReplaceAllString(text, "• ")
	return strings.TrimSpace(text)
}
