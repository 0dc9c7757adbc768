// Package slug derives deterministic blob object names from titles.
// Re-uploading an asset under the same title produces the same key, so the
// new object overwrites the old one predictably.
package slug

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Make normalizes a title into a storage-safe slug: transliterate to ASCII,
// lower-case, spaces to hyphens, everything else unsafe dropped.
func Make(title string) string {
	s := unidecode.Unidecode(title)
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	lastHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
