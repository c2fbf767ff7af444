// Package engine implements skill-gap scoring and learning roadmap generation.
//
// Everything here is a pure function of its inputs: no I/O, no clocks, no
// shared mutable state. An Engine is safe for concurrent use.
package engine

import (
	"sort"
	"strings"

	"github.com/forhad-fhj/SkillBridge/models"
)

// AliasTable maps a canonical token to the surface forms that should be
// treated as that token during normalization.
type AliasTable map[string][]string

// DefaultAliases returns the common framework and tool spelling variants.
func DefaultAliases() AliasTable {
	return AliasTable{
		"react":    {"react.js", "reactjs"},
		"vue":      {"vue.js", "vuejs"},
		"nextjs":   {"next.js"},
		"express":  {"express.js", "expressjs"},
		"nodejs":   {"node.js"},
		"postgres": {"postgresql"},
		"mongo":    {"mongodb"},
		"k8s":      {"kubernetes"},
	}
}

// Normalizer converts skill names into canonical comparison tokens.
type Normalizer struct {
	aliases map[string]string
}

// NewNormalizer builds a normalizer. A nil table disables aliasing.
func NewNormalizer(aliases AliasTable) *Normalizer {
	n := &Normalizer{aliases: make(map[string]string)}

	// sorted so a surface form listed under two canonicals resolves the same way every time
	canonicals := make([]string, 0, len(aliases))
	for canonical := range aliases {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	for _, canonical := range canonicals {
		target := fold(canonical)
		if target == "" {
			continue
		}
		for _, form := range aliases[canonical] {
			key := fold(form)
			if key == "" || key == target {
				continue
			}
			if _, exists := n.aliases[key]; !exists {
				n.aliases[key] = target
			}
		}
	}
	return n
}

// Canonical returns the comparison token for a skill name, or "" for a blank name.
func (n *Normalizer) Canonical(skill string) string {
	token := fold(skill)
	if alias, ok := n.aliases[token]; ok {
		return alias
	}
	return token
}

// fold trims, collapses inner whitespace and lower-cases.
func fold(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// NormalizedSet is a deduplicated, ordered set of canonical tokens with the
// display string each token was first seen as.
type NormalizedSet struct {
	Tokens  []string
	Display map[string]string
	index   map[string]int
}

func newNormalizedSet() *NormalizedSet {
	return &NormalizedSet{
		Tokens:  []string{},
		Display: make(map[string]string),
		index:   make(map[string]int),
	}
}

func (s *NormalizedSet) add(token, display string) bool {
	if _, seen := s.index[token]; seen {
		return false
	}
	s.index[token] = len(s.Tokens)
	s.Tokens = append(s.Tokens, token)
	s.Display[token] = display
	return true
}

// Contains reports whether the canonical token is in the set.
func (s *NormalizedSet) Contains(token string) bool {
	_, ok := s.index[token]
	return ok
}

// Position returns the first-seen position of a token, or -1.
func (s *NormalizedSet) Position(token string) int {
	if pos, ok := s.index[token]; ok {
		return pos
	}
	return -1
}

// Len returns the number of distinct tokens.
func (s *NormalizedSet) Len() int {
	return len(s.Tokens)
}

// Normalize flattens every category of the skill set into canonical tokens.
// Blank entries are skipped; an empty or nil set yields an empty result.
func (n *Normalizer) Normalize(skills models.SkillSet) *NormalizedSet {
	set := newNormalizedSet()
	for _, skill := range skills.Flatten() {
		token := n.Canonical(skill)
		if token == "" {
			continue
		}
		set.add(token, strings.Join(strings.Fields(skill), " "))
	}
	return set
}
