// Package extract finds known technical skills in free text.
package extract

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/forhad-fhj/SkillBridge/models"
)

// SkillExtractor turns document text into a categorized skill set.
type SkillExtractor interface {
	ExtractSkills(ctx context.Context, text string) (models.SkillSet, error)
}

type pattern struct {
	display string
	re      *regexp.Regexp
}

// TaxonomyExtractor matches text against a fixed taxonomy. Patterns are
// compiled once; the extractor is safe for concurrent use.
type TaxonomyExtractor struct {
	categories []string
	patterns   map[string][]pattern
}

// NewTaxonomyExtractor compiles the taxonomy into word-boundary matchers.
func NewTaxonomyExtractor(taxonomy Taxonomy) *TaxonomyExtractor {
	title := cases.Title(language.English)
	e := &TaxonomyExtractor{patterns: make(map[string][]pattern, len(taxonomy))}

	for category, skills := range taxonomy {
		e.categories = append(e.categories, category)
		for _, skill := range skills {
			skill = strings.ToLower(strings.TrimSpace(skill))
			if skill == "" {
				continue
			}
			e.patterns[category] = append(e.patterns[category], pattern{
				display: title.String(skill),
				re:      regexp.MustCompile(boundaryPattern(skill)),
			})
		}
	}
	sort.Strings(e.categories)
	return e
}

// boundaryPattern anchors a literal on word boundaries. Go's \b only
// works next to word characters, so skills such as "c++" or ".net" get
// an explicit non-word-or-edge guard on that side instead.
func boundaryPattern(skill string) string {
	quoted := regexp.QuoteMeta(skill)
	left, right := `\b`, `\b`
	if !isWordByte(skill[0]) {
		left = `(?:^|[^\w])`
	}
	if !isWordByte(skill[len(skill)-1]) {
		right = `(?:$|[^\w])`
	}
	return left + quoted + right
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// Extract returns every category of the taxonomy with the sorted, title-cased
// skills found in text. Empty text yields empty lists.
func (e *TaxonomyExtractor) Extract(text string) models.SkillSet {
	lower := strings.ToLower(text)
	result := make(models.SkillSet, len(e.categories))

	for _, category := range e.categories {
		found := []string{}
		if lower != "" {
			seen := map[string]bool{}
			for _, p := range e.patterns[category] {
				if !seen[p.display] && p.re.MatchString(lower) {
					seen[p.display] = true
					found = append(found, p.display)
				}
			}
			sort.Strings(found)
		}
		result[category] = found
	}
	return result
}

// ExtractSkills implements SkillExtractor.
func (e *TaxonomyExtractor) ExtractSkills(ctx context.Context, text string) (models.SkillSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.Extract(text), nil
}
