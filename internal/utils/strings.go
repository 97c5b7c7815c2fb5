package utils

import (
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// LikeEscape is the escape character ContainsPattern uses; queries must say
// "LIKE ? ESCAPE '!'".
const LikeEscape = "!"

var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

// ContainsPattern turns free text into a LIKE pattern matching it anywhere.
// Wildcards typed by the user are escaped with LikeEscape.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(NormalizeSpace(s)) + "%"
}

// NormalizeEmail trims and lower-cases an address for storage and lookup.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
