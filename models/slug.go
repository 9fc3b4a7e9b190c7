package models

import "strings"

// Slugify derives a URL-safe identifier from an English display name:
// lowercase, trimmed, non-alphanumeric runs collapsed to single hyphens.
// Slugs are computed on the fly, never stored, so two names that
// normalize identically will collide; lookups resolve to the oldest row.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
