package slug

import "strings"

// Make lowercases input and joins its ASCII alphanumeric runs with dashes.
// Anything else (spaces, emoji, punctuation) acts as a separator. The
// result is empty when input carries no alphanumeric characters.
func Make(input string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
