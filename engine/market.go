package engine

import "github.com/forhad-fhj/SkillBridge/models"

// MarketEntry is the aggregated demand for one canonical skill.
type MarketEntry struct {
	Token     string
	Display   string
	Frequency int
}

// Market is the demand table built from a set of job records.
type Market struct {
	Entries  map[string]*MarketEntry
	Order    []string // first-seen order across jobs
	JobCount int
}

// AggregateMarket counts, for every canonical skill, how many distinct jobs
// ask for it. The display name comes from the first job that introduced it.
func AggregateMarket(n *Normalizer, jobs []models.JobRecord) *Market {
	market := &Market{
		Entries:  make(map[string]*MarketEntry),
		Order:    []string{},
		JobCount: len(jobs),
	}

	for _, job := range jobs {
		skills := n.Normalize(job.ExtractedSkills)
		for _, token := range skills.Tokens {
			entry, ok := market.Entries[token]
			if !ok {
				entry = &MarketEntry{Token: token, Display: skills.Display[token]}
				market.Entries[token] = entry
				market.Order = append(market.Order, token)
			}
			entry.Frequency++
		}
	}

	return market
}

// Size returns the number of distinct skills in the market.
func (m *Market) Size() int {
	return len(m.Order)
}

// TotalFrequency sums the frequency of every market skill.
func (m *Market) TotalFrequency() int {
	total := 0
	for _, entry := range m.Entries {
		total += entry.Frequency
	}
	return total
}
