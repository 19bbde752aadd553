// Package match resolves a partially typed profile name against the names in
// the store.
package match

import (
	"errors"
	"regexp"
	"slices"
	"strings"
)

// ErrNoMatch is returned when no candidate matches the query at any tier.
var ErrNoMatch = errors.New("no matching profile")

// Tier identifies which rule selected a candidate.
type Tier int

const (
	TierNone Tier = iota
	TierExact
	TierPrefix
	TierPattern
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierPrefix:
		return "prefix"
	case TierPattern:
		return "pattern"
	default:
		return "none"
	}
}

// Resolve returns the candidate selected for query. Tiers are tried in order
// exact, prefix, pattern; within a tier the lexicographically first candidate
// wins. candidates is not modified.
func Resolve(query string, candidates []string) (string, error) {
	name, _, err := ResolveTier(query, candidates)
	return name, err
}

// ResolveTier is Resolve but also reports the tier that matched.
func ResolveTier(query string, candidates []string) (string, Tier, error) {
	if query == "" {
		return "", TierNone, ErrNoMatch
	}

	sorted := slices.Clone(candidates)
	slices.Sort(sorted)

	if slices.Contains(sorted, query) {
		return query, TierExact, nil
	}

	for _, c := range sorted {
		if strings.HasPrefix(c, query) {
			return c, TierPrefix, nil
		}
	}

	re := pattern(query)
	for _, c := range sorted {
		if re.MatchString(c) {
			return c, TierPattern, nil
		}
	}

	return "", TierNone, ErrNoMatch
}

// pattern compiles query as an unanchored regular expression. Queries that
// are not valid expressions are matched literally.
func pattern(query string) *regexp.Regexp {
	if re, err := regexp.Compile(query); err == nil {
		return re
	}
	return regexp.MustCompile(regexp.QuoteMeta(query))
}
