package rendering

import "strings"

// EscapeMarkdown escapes the characters chat markdown treats as formatting
// so titles render literally, including inside [text](url) links.
// Special characters: \ * _ ~ ` | [ ] > #
func EscapeMarkdown(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '\\', '*', '_', '~', '`', '|', '[', ']', '>', '#':
			result.WriteRune('\\')
		}
		result.WriteRune(r)
	}

	return result.String()
}

// escapeURL keeps a URL from closing a markdown link early.
func escapeURL(u string) string {
	return strings.NewReplacer("(", "%28", ")", "%29", " ", "%20").Replace(u)
}
