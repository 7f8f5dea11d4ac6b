package insights

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// SongID derives the canonical identity for a track from its title and
// credited artists. Catalog entries with different source IDs but the
// same title and artists (single vs. album release, the/The spelling)
// collapse to one identity. Case and artist order are normalized away;
// punctuation and remix or version suffixes are not, so a re-release
// under a new title keeps its own identity. Empty inputs still produce
// a valid hash.
func SongID(title string, artists []string) string {
	lowered := make([]string, len(artists))
	for i, artist := range artists {
		lowered[i] = strings.ToLower(strings.TrimSpace(artist))
	}
	sort.Strings(lowered)

	combined := strings.ToLower(strings.TrimSpace(title)) + " " + strings.Join(lowered, " ")
	sum := md5.Sum([]byte(combined))
	return hex.EncodeToString(sum[:])
}
