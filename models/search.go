// Package models file: models/search.go
package models

import "strings"

// containsFold is a case-insensitive substring check used by directory search.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
