package component

import (
	"fmt"

	"github.com/sahilm/fuzzy"
)

// Group keywords understood by the selector.
const (
	// TokenAll expands to every known repository.
	TokenAll = "ALL"
	// TokenCluster expands to the cluster subset.
	TokenCluster = "CLUSTER"
	// TokenCwd stands for the component of the current working directory.
	TokenCwd = "."
)

// Selector expands user-supplied component tokens into a deduplicated list
// of standard component names. Tokens may be standard names, short names,
// the group keywords ALL and CLUSTER, or "." for the current directory.
//
// Unrecognized tokens never fail the whole selection: each one is reported
// through Warn and skipped. Selection order follows first appearance;
// callers must not rely on it beyond determinism.
type Selector struct {
	Registry *Registry

	// CwdBase returns the basename of the current working directory. It is
	// used verbatim for the "." token, without checking it against the
	// registry: running from a directory that is not a component checkout
	// simply selects a name no downstream command will find.
	CwdBase func() string

	// Warn receives one formatted message per skipped token. A nil Warn
	// drops the messages.
	Warn func(msg string)
}

// Select expands tokens in the order given. An empty token list yields an
// empty selection; the CLUSTER default lives in the CLI flag layer, not
// here.
func (s *Selector) Select(tokens []string) []string {
	seen := make(map[string]bool)
	var selected []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			selected = append(selected, name)
		}
	}

	for _, token := range tokens {
		switch {
		case token == TokenAll:
			for _, name := range s.Registry.All {
				add(name)
			}
		case token == TokenCluster:
			for _, name := range s.Registry.Cluster {
				add(name)
			}
		case token == TokenCwd:
			add(s.CwdBase())
		case s.Registry.Contains(token):
			add(token)
		default:
			if name, err := Resolve(token, s.Registry); err == nil {
				add(name)
				continue
			}
			s.warnf("Ignoring unknown component %s.%s", token, s.suggestion(token))
		}
	}

	return selected
}

func (s *Selector) warnf(format string, args ...any) {
	if s.Warn != nil {
		s.Warn(fmt.Sprintf(format, args...))
	}
}

// suggestion fuzzy-matches a bad token against all standard and short names
// and returns a hint for the closest one, or "" when nothing ranks.
func (s *Selector) suggestion(token string) string {
	candidates := append(s.Registry.ShortNames(), s.Registry.All...)
	matches := fuzzy.Find(token, candidates)
	if len(matches) == 0 {
		return ""
	}
	name := matches[0].Str
	if reg := s.Registry; !reg.Contains(name) {
		if full, err := Resolve(name, reg); err == nil {
			name = full
		}
	}
	return fmt.Sprintf(" Did you mean %s?", name)
}
