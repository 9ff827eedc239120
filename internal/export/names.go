// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import "strings"

// illegalFilename covers the characters Windows rejects in filenames; the
// output tree gets uploaded from any OS.
const illegalFilename = `<>:"/\|?*`

// SafeFilename replaces filesystem-illegal characters, including ASCII
// control characters, with underscores and strips trailing spaces and dots.
func SafeFilename(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || strings.ContainsRune(illegalFilename, r) {
			b.WriteByte('_')
		} else {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " .")
}
