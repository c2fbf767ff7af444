package models

import (
	"sort"
	"strings"
)

// SkillSet maps a free-form category name (languages, frameworks, tools, ...)
// to an ordered list of skill names.
type SkillSet map[string][]string

// Categories returns the category keys in sorted order. Every walk over a
// SkillSet goes through this so "first seen" is stable across calls.
func (s SkillSet) Categories() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Flatten returns every skill entry across categories.
func (s SkillSet) Flatten() []string {
	var all []string
	for _, category := range s.Categories() {
		all = append(all, s[category]...)
	}
	return all
}

// Count returns the number of non-blank skill entries.
func (s SkillSet) Count() int {
	n := 0
	for _, skills := range s {
		for _, skill := range skills {
			if strings.TrimSpace(skill) != "" {
				n++
			}
		}
	}
	return n
}

// Validate checks the structure of the set. field names the input in the
// returned error, e.g. "userSkills" or "jobDescriptions[2].extractedSkills".
// A nil category list counts as empty.
func (s SkillSet) Validate(field string) error {
	for _, category := range s.Categories() {
		if strings.TrimSpace(category) == "" {
			return &InputError{Field: field, Message: "category name must not be blank"}
		}
	}
	return nil
}
