package utils

import (
	"strings"
	"unicode"
)

// UnicodeLower lower-cases s rune by rune without any locale rules, so
// that search normalization is stable regardless of the process locale.
func UnicodeLower(s string) string {
	return strings.Map(unicode.ToLower, s)
}

// ContainsFold reports whether haystack contains needle after both are
// normalized with UnicodeLower. An empty needle always matches.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(UnicodeLower(haystack), UnicodeLower(needle))
}
