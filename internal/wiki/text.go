package wiki

import (
	"strings"
	"unicode"
)

// LimitSentences returns at most the first n sentences of text. A sentence
// ends at '.', '!' or '?' (optionally followed by closing quotes or
// brackets) when whitespace and an upper-case letter or digit come next.
// A period after an initial ("J.") or a common abbreviation ("Dr.") does
// not end a sentence.
func LimitSentences(text string, n int) string {
	text = strings.TrimSpace(text)
	if n <= 0 || text == "" {
		return ""
	}

	runes := []rune(text)
	count := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		if runes[i] == '.' && isAbbreviation(wordBefore(runes, i)) {
			continue
		}

		end := i + 1
		for end < len(runes) && isCloser(runes[end]) {
			end++
		}
		if end == len(runes) {
			return text
		}
		if !unicode.IsSpace(runes[end]) {
			continue
		}

		next := end
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		if next < len(runes) && !unicode.IsUpper(runes[next]) && !unicode.IsDigit(runes[next]) {
			continue
		}

		count++
		if count == n {
			return string(runes[:end])
		}
		i = end - 1
	}
	return text
}

// abbreviations are words that usually end in a period mid-sentence.
var abbreviations = map[string]bool{
	"Mr": true, "Mrs": true, "Ms": true, "Dr": true, "Prof": true, "Sr": true,
	"Jr": true, "St": true, "Mt": true, "Ft": true, "Gen": true, "Col": true,
	"Lt": true, "Capt": true, "Sgt": true, "Rev": true, "Hon": true, "Gov": true,
	"Sen": true, "Rep": true, "Pres": true, "No": true, "Vol": true, "Inc": true,
	"Ltd": true, "Co": true, "Corp": true, "vs": true, "etc": true, "ca": true,
	"approx": true, "Jan": true, "Feb": true, "Aug": true, "Sept": true,
	"Oct": true, "Nov": true, "Dec": true,
}

// wordBefore returns the run of letters ending just before runes[i].
func wordBefore(runes []rune, i int) string {
	start := i
	for start > 0 && unicode.IsLetter(runes[start-1]) {
		start--
	}
	return string(runes[start:i])
}

// isAbbreviation reports whether word is an initial or a known abbreviation.
func isAbbreviation(word string) bool {
	runes := []rune(word)
	if len(runes) == 1 && unicode.IsUpper(runes[0]) {
		return true
	}
	return abbreviations[word]
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '»', '”', '’':
		return true
	}
	return false
}

// truncate shortens s to at most limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
