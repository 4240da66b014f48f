package main

import "strings"

// asciiReplacements maps the accented characters and typographic punctuation
// seen in the customer CSV export to ASCII equivalents.
var asciiReplacements = map[rune]string{
	'á': "a", 'à': "a", 'ä': "a", 'â': "a", 'ã': "a", 'å': "a",
	'é': "e", 'è': "e", 'ë': "e", 'ê': "e",
	'í': "i", 'ì': "i", 'ï': "i", 'î': "i",
	'ó': "o", 'ò': "o", 'ö': "o", 'ô': "o", 'õ': "o",
	'ú': "u", 'ù': "u", 'ü': "u", 'û': "u",
	'ñ': "n", 'ç': "c",
	'Á': "A", 'À': "A", 'Ä': "A", 'Â': "A", 'Ã': "A", 'Å': "A",
	'É': "E", 'È': "E", 'Ë': "E", 'Ê': "E",
	'Í': "I", 'Ì': "I", 'Ï': "I", 'Î': "I",
	'Ó': "O", 'Ò': "O", 'Ö': "O", 'Ô': "O", 'Õ': "O",
	'Ú': "U", 'Ù': "U", 'Ü': "U", 'Û': "U",
	'Ñ': "N", 'Ç': "C",
	'“': `"`, '”': `"`, '‘': "'", '’': "'",
	'–': "-", '—': "-", '…': "...",
}

// cleanText rewrites content to pure ASCII: known characters are substituted
// from the replacement table, anything else non-ASCII is dropped. Returns the
// cleaned text plus the replaced and dropped character counts.
func cleanText(content string) (string, int, int) {
	var b strings.Builder
	b.Grow(len(content))

	replaced, dropped := 0, 0
	for _, r := range content {
		switch {
		case r < 128:
			b.WriteRune(r)
		default:
			if sub, ok := asciiReplacements[r]; ok {
				b.WriteString(sub)
				replaced++
			} else {
				dropped++
			}
		}
	}
	return b.String(), replaced, dropped
}
