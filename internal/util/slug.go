package util

import "regexp"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Slugify derives a URL-safe slug from a display name: lowercase, every run
// of characters outside [a-z0-9] collapsed to a single hyphen, leading and
// trailing hyphens trimmed. Non-ASCII letters are not transliterated, so
// accented characters fold into hyphens like any other excluded rune.
func Slugify(name string) string {
	out := make([]byte, 0, len(name))
	pendingHyphen := false
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && len(out) > 0 {
				out = append(out, '-')
			}
			pendingHyphen = false
			out = append(out, byte(r))
			continue
		}
		pendingHyphen = true
	}
	return string(out)
}

// IsValidSlug reports whether s is a non-empty hyphen-separated lowercase
// alphanumeric slug with no leading or trailing hyphen.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
