// Package gallery holds the pure logic behind the share gallery: gradient
// assignment and fallback initials for cards without a logo, the search/tag
// filter, outbound URL construction, and the card edit state machine.
//
// Nothing here performs I/O. Every function is deterministic over its inputs
// and never mutates the slices it is given.
package gallery

import (
	"strings"
	"unicode"
	"unicode/utf16"
)

// Gradient is a two-stop background used for cards that have no logo.
type Gradient struct {
	From string
	To   string
}

// Class returns the CSS class tokens for the gradient.
func (g Gradient) Class() string {
	return "bg-gradient-to-br " + g.From + " " + g.To
}

// Palette is the fixed set of fallback gradients. Its order is part of the
// name-to-color contract: reordering it recolors every existing card.
var Palette = [8]Gradient{
	{From: "from-blue-500", To: "to-cyan-500"},
	{From: "from-green-500", To: "to-teal-500"},
	{From: "from-pink-500", To: "to-red-500"},
	{From: "from-indigo-500", To: "to-purple-600"},
	{From: "from-yellow-500", To: "to-orange-500"},
	{From: "from-fuchsia-500", To: "to-pink-500"},
	{From: "from-red-600", To: "to-yellow-500"},
	{From: "from-lime-500", To: "to-green-600"},
}

// Hash computes the name hash that selects a card's gradient.
//
// It folds the UTF-16 code units of name as hash = c + ((hash << 5) - hash).
// Only the shift is performed in 32-bit signed arithmetic; the subtraction and
// addition are exact, so the accumulator may leave the int32 range. This
// reproduces the hashes already assigned to existing cards bit for bit.
// The result is always non-negative.
func Hash(name string) int64 {
	var h int64
	for _, c := range utf16.Encode([]rune(name)) {
		h = int64(c) + int64(int32(h)<<5) - h
	}
	if h < 0 {
		return -h
	}
	return h
}

// GradientIndex returns the palette index for name, in [0, len(Palette)).
func GradientIndex(name string) int {
	return int(Hash(name) % int64(len(Palette)))
}

// AssignGradient maps name to its palette gradient.
func AssignGradient(name string) Gradient {
	return Palette[GradientIndex(name)]
}

// FallbackText returns the placeholder label shown in place of a missing
// logo: the uppercased initials of the first two words of name, or "?" when
// name is blank.
func FallbackText(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "?"
	}

	var b strings.Builder
	for _, word := range strings.FieldsFunc(trimmed, unicode.IsSpace) {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
	}

	initials := []rune(strings.ToUpper(b.String()))
	if len(initials) > 2 {
		initials = initials[:2]
	}
	if len(initials) == 0 {
		first := []rune(trimmed)[:1]
		return strings.ToUpper(string(first))
	}
	return string(initials)
}
