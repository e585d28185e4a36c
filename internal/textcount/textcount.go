// Package textcount implements the word counting rules applied to prose
// segments: whitespace tokenization with punctuation stripping, per-codepoint
// counting for CJK scripts, and grapheme-level emoji accounting. Every
// function is pure.
package textcount

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Options select the counting mode for a piece of prose.
type Options struct {
	// Chinese counts each CJK codepoint as one word and tokenizes the
	// remaining text by whitespace. CJK scripts carry no inter-word spacing,
	// so each character approximates one reading unit. When false the whole
	// text is counted as whitespace-delimited tokens.
	Chinese bool
	// Emoji adds one word per emoji grapheme cluster. When false emoji are
	// stripped before tokenization and contribute nothing.
	Emoji bool
}

// cjk covers the scripts counted one word per codepoint.
var cjk = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Hangul,
}

// IsCJK reports whether r belongs to a script read without inter-word
// spacing (Han, Hiragana, Katakana, Hangul).
func IsCJK(r rune) bool {
	return unicode.In(r, cjk...)
}

// IsEmoji reports whether r falls in the pictographic blocks counted as
// emoji. The table covers the common emoji blocks rather than the full
// Unicode emoji property.
func IsEmoji(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
	case r >= 0x1F300 && r <= 0x1F5FF: // misc symbols and pictographs
	case r >= 0x1F680 && r <= 0x1F6FF: // transport and map
	case r >= 0x1F700 && r <= 0x1F77F: // alchemical symbols
	case r >= 0x1F780 && r <= 0x1F7FF: // geometric shapes extended
	case r >= 0x1F800 && r <= 0x1F8FF: // supplemental arrows-C
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental symbols and pictographs
	case r >= 0x1FA00 && r <= 0x1FAFF: // chess symbols, extended-A
	case r >= 0x2600 && r <= 0x26FF: // misc symbols
	case r >= 0x2700 && r <= 0x27BF: // dingbats
	case r == 0x2B50 || r == 0x2B55: // star, heavy large circle
	default:
		return false
	}
	return true
}

// Count applies the word counting rules to a single prose segment and
// returns the number of words it contributes, emoji included when enabled.
// Tokens never merge across segment boundaries, so callers can feed segments
// in any grouping the scanner produces.
func Count(text string, opts Options) int {
	text, emoji := extractEmoji(text)

	count := 0
	if opts.Emoji {
		count += emoji
	}

	if opts.Chinese {
		var b strings.Builder
		b.Grow(len(text))
		for _, r := range text {
			if IsCJK(r) {
				count++
				// A CJK codepoint ends any adjacent Latin run.
				b.WriteByte(' ')
				continue
			}
			b.WriteRune(r)
		}
		text = b.String()
	}

	for _, token := range strings.Fields(text) {
		if countable(token) {
			count++
		}
	}
	return count
}

// extractEmoji removes emoji from text, replacing each with a space so the
// surrounding tokens still split, and returns the number removed. Emoji are
// measured as grapheme clusters: a ZWJ sequence such as a family emoji spans
// several codepoints but counts once. A cluster qualifies when its leading
// codepoint is pictographic.
func extractEmoji(text string) (string, int) {
	if !strings.ContainsFunc(text, IsEmoji) {
		return text, 0
	}

	var b strings.Builder
	b.Grow(len(text))

	emoji := 0
	state := -1
	for rest := text; len(rest) > 0; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		if IsEmoji(r) {
			emoji++
			b.WriteByte(' ')
			continue
		}
		b.WriteString(cluster)
	}
	return b.String(), emoji
}

// countable reports whether a whitespace-delimited token holds at least one
// letter or number rune. Punctuation-only tokens are not words.
func countable(token string) bool {
	return strings.ContainsFunc(token, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	})
}
