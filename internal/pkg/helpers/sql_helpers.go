package helpers

import "strings"

// JoinColumns renders a column list for RETURNING clauses
func JoinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

// Qualify prefixes every column with a table alias, e.g. Qualify("j", "id") -> "j.id"
func Qualify(alias string, cols ...string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

// NilIfEmpty returns nil for blank strings and a pointer to the trimmed value otherwise.
// Optional text columns are stored as NULL rather than ''.
func NilIfEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}
