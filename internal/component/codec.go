// Package component implements REANA component name handling: the
// abbreviation codec mapping standard repository names to short aliases
// (reana-job-controller <-> r-j-controller) and the selector expanding
// user-supplied component tokens into standard names.
package component

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCannotMap indicates that a short component name matched either zero or
// more than one registry entry, so it cannot be mapped to a single standard
// name.
var ErrCannotMap = errors.New("cannot be uniquely mapped")

// Abbreviate returns the canonical short version of a standard component
// name: the first letter of every hyphen-separated part except the last,
// followed by the last part unchanged.
//
//	reana-job-controller -> r-j-controller
//	reana                -> reana
func Abbreviate(name string) string {
	parts := strings.Split(name, "-")
	var b strings.Builder
	for _, part := range parts[:len(parts)-1] {
		if part != "" {
			b.WriteByte(part[0])
		}
		b.WriteString("-")
	}
	b.WriteString(parts[len(parts)-1])
	return b.String()
}

// Resolve returns the standard component name whose abbreviation equals
// short. It scans the registry in order and fails with ErrCannotMap when
// the abbreviation matches no entry or more than one.
func Resolve(short string, reg *Registry) (string, error) {
	var matches []string
	for _, name := range reg.All {
		if Abbreviate(name) == short {
			matches = append(matches, name)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	return "", fmt.Errorf("component name %q %w", short, ErrCannotMap)
}
