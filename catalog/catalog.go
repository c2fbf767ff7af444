// Package catalog provides curated learning resources per skill.
package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/forhad-fhj/SkillBridge/models"
)

// Keys shorter than this only match exactly, so "go" never matches "mongodb".
const minPartialKey = 3

// Entry is one skill's learning material as stored in a catalog file.
type Entry struct {
	Skill         string            `json:"skill" yaml:"skill"`
	EstimatedTime string            `json:"estimatedTime,omitempty" yaml:"estimatedTime,omitempty"`
	Description   string            `json:"description,omitempty" yaml:"description,omitempty"`
	Resources     []models.Resource `json:"resources" yaml:"resources"`
}

// Options configures a Catalog.
type Options struct {
	// SearchFallback makes Lookup return a generic web-search resource for
	// skills the catalog does not know.
	SearchFallback bool
}

// Catalog is a read-only skill -> resources index. It is safe for
// concurrent use once built.
type Catalog struct {
	entries map[string]Entry
	keys    []string
	opts    Options
}

// New builds a catalog from entries. Later entries replace earlier ones
// with the same normalized key.
func New(entries []Entry, opts Options) *Catalog {
	c := &Catalog{
		entries: make(map[string]Entry, len(entries)),
		opts:    opts,
	}
	for _, e := range entries {
		key := NormalizeKey(e.Skill)
		if key == "" {
			continue
		}
		c.entries[key] = e
	}
	c.keys = make([]string, 0, len(c.entries))
	for k := range c.entries {
		c.keys = append(c.keys, k)
	}
	sort.Strings(c.keys)
	return c
}

// NormalizeKey maps a skill name onto a catalog key: lower-cased, trimmed,
// with ".js" suffixes and dots removed ("Node.js" -> "node", "ASP.NET" -> "aspnet").
func NormalizeKey(skill string) string {
	key := strings.ToLower(strings.TrimSpace(skill))
	key = strings.ReplaceAll(key, ".js", "")
	key = strings.ReplaceAll(key, ".", "")
	return strings.TrimSpace(key)
}

// Lookup finds resources for a skill. An exact key match wins; otherwise the
// longest key that contains, or is contained in, the skill key is used.
// Unknown skills return nil unless SearchFallback is set.
func (c *Catalog) Lookup(skill string) (*models.SkillResources, error) {
	key := NormalizeKey(skill)
	if key == "" {
		return nil, nil
	}

	if e, ok := c.entries[key]; ok {
		return toSkillResources(e), nil
	}

	best := ""
	for _, k := range c.keys {
		if len(k) < minPartialKey || len(key) < minPartialKey {
			continue
		}
		if strings.Contains(key, k) || strings.Contains(k, key) {
			if len(k) > len(best) {
				best = k
			}
		}
	}
	if best != "" {
		return toSkillResources(c.entries[best]), nil
	}

	if c.opts.SearchFallback {
		return searchFallback(skill), nil
	}
	return nil, nil
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Skills lists the display names of all entries in key order.
func (c *Catalog) Skills() []string {
	out := make([]string, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.entries[k].Skill)
	}
	return out
}

func toSkillResources(e Entry) *models.SkillResources {
	return &models.SkillResources{
		Skill:         e.Skill,
		EstimatedTime: e.EstimatedTime,
		Description:   e.Description,
		Resources:     append([]models.Resource(nil), e.Resources...),
	}
}

func searchFallback(skill string) *models.SkillResources {
	name := strings.Join(strings.Fields(skill), " ")
	return &models.SkillResources{
		Skill: name,
		Resources: []models.Resource{{
			Title:      fmt.Sprintf("Search for %s tutorials", name),
			URL:        "https://www.google.com/search?q=" + url.QueryEscape(name+" tutorial"),
			Platform:   "Google",
			Difficulty: "Varies",
			Duration:   "Self-paced",
			Type:       "search",
		}},
	}
}

// LoadFile reads catalog entries from a JSON or YAML file, chosen by
// extension (.json, .yaml, .yml). The file holds either a list of entries
// or a map keyed by skill.
func LoadFile(path string) ([]Entry, error) {
	data, unmarshal, err := readDataFile(path)
	if err != nil {
		return nil, err
	}

	var list []Entry
	if err := unmarshal(data, &list); err == nil {
		return list, nil
	}

	var keyed map[string]Entry
	if err := unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	keys := make([]string, 0, len(keyed))
	for k := range keyed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	list = make([]Entry, 0, len(keyed))
	for _, k := range keys {
		e := keyed[k]
		if e.Skill == "" {
			e.Skill = k
		}
		list = append(list, e)
	}
	return list, nil
}

// readDataFile reads path and picks a decoder by extension
func readDataFile(path string) ([]byte, func([]byte, interface{}) error, error) {
	var unmarshal func([]byte, interface{}) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return nil, nil, fmt.Errorf("unsupported catalog file type: %s", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return data, unmarshal, nil
}

// Load returns the built-in catalog, extended by the entries in path when
// path is non-empty.
func Load(path string, opts Options) (*Catalog, error) {
	entries := Builtin()
	if path != "" {
		extra, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		log.Printf("[Catalog] Loaded %d entries from %s", len(extra), path)
		entries = append(entries, extra...)
	}
	return New(entries, opts), nil
}
