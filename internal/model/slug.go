package model

import "strings"

// Slugify folds a display name into a url-safe, lowercase, dash-joined
// key. Distinct names can still collide ("Team A" vs "team-a"), which is
// why AddTeam and RenameTeam guard slug uniqueness per activity.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
