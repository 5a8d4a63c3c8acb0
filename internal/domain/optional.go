package domain

import "strings"

// OptionalString returns nil for blank input, otherwise a pointer to the
// trimmed value. Evidence references and notes are stored this way so that
// "absent" never depends on an empty-string sentinel.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// present reports whether p holds a non-blank value.
func present(p *string) bool {
	return p != nil && strings.TrimSpace(*p) != ""
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
