package domain

import "strings"

// NormalizeTitle trims surrounding whitespace and lower-cases a movie title
// so screen assignments can be compared regardless of how they were typed.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// SameTitle reports whether two movie titles refer to the same movie.
// Empty titles never match.
func SameTitle(a, b string) bool {
	na, nb := NormalizeTitle(a), NormalizeTitle(b)
	if na == "" || nb == "" {
		return false
	}

	return na == nb
}

// IntersectSeats returns the requested seats that also appear in taken, in
// request order and without duplicates.
func IntersectSeats(requested, taken []string) []string {
	takenSet := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		takenSet[s] = struct{}{}
	}

	seen := make(map[string]struct{}, len(requested))
	conflicts := []string{}

	for _, s := range requested {
		if _, ok := takenSet[s]; !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}

		seen[s] = struct{}{}
		conflicts = append(conflicts, s)
	}

	return conflicts
}

// DuplicateSeats returns seats listed more than once in a single request.
func DuplicateSeats(seats []string) []string {
	counts := make(map[string]int, len(seats))
	duplicates := []string{}

	for _, s := range seats {
		counts[s]++
		if counts[s] == 2 {
			duplicates = append(duplicates, s)
		}
	}

	return duplicates
}
