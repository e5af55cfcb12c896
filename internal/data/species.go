package data

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/arenasim/server/internal/component"
)

// SpeciesTemplate holds static data for a mob species loaded from YAML.
type SpeciesTemplate struct {
	Name            string  `yaml:"name"`
	Behavior        string  `yaml:"behavior"`    // default, weaver, interceptor, scripted
	Temperament     string  `yaml:"temperament"` // passive, neutral, aggro
	AggroRange      float32 `yaml:"aggro_range"`
	Speed           float32 `yaml:"speed"`
	ProjectileSpeed float32 `yaml:"projectile_speed"`
	Radius          float32 `yaml:"radius"`
	Rarity          string  `yaml:"rarity"` // default rarity when a spawn omits it

	aiType component.AIType
	rarity component.Rarity
}

// AIType returns the parsed temperament.
func (s *SpeciesTemplate) AIType() component.AIType { return s.aiType }

// DefaultRarity returns the parsed rarity.
func (s *SpeciesTemplate) DefaultRarity() component.Rarity { return s.rarity }

type speciesListFile struct {
	Species []SpeciesTemplate `yaml:"species"`
}

// SpeciesTable holds all species templates indexed by name.
type SpeciesTable struct {
	templates map[string]*SpeciesTemplate
}

// LoadSpeciesTable loads species templates from a YAML file.
func LoadSpeciesTable(path string) (*SpeciesTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read species list: %w", err)
	}
	return ParseSpeciesTable(raw)
}

// ParseSpeciesTable decodes and validates a species list.
func ParseSpeciesTable(raw []byte) (*SpeciesTable, error) {
	var f speciesListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse species list: %w", err)
	}
	t := &SpeciesTable{templates: make(map[string]*SpeciesTemplate, len(f.Species))}
	for i := range f.Species {
		sp := &f.Species[i]
		sp.Name = foldName(sp.Name)
		if sp.Name == "" {
			return nil, fmt.Errorf("species #%d: missing name", i)
		}
		if _, dup := t.templates[sp.Name]; dup {
			return nil, fmt.Errorf("species %q: duplicate entry", sp.Name)
		}
		sp.Behavior = foldName(sp.Behavior)
		if sp.Behavior == "" {
			sp.Behavior = "default"
		}
		if sp.Temperament == "" {
			sp.Temperament = "passive"
		}
		typ, ok := component.ParseAIType(foldName(sp.Temperament))
		if !ok {
			return nil, fmt.Errorf("species %q: unknown temperament %q", sp.Name, sp.Temperament)
		}
		sp.aiType = typ
		if sp.Rarity == "" {
			sp.Rarity = "common"
		}
		r, ok := component.ParseRarity(foldName(sp.Rarity))
		if !ok {
			return nil, fmt.Errorf("species %q: unknown rarity %q", sp.Name, sp.Rarity)
		}
		sp.rarity = r
		if sp.Radius <= 0 {
			sp.Radius = 10
		}
		t.templates[sp.Name] = sp
	}
	return t, nil
}

// Get returns a species template by name, or nil if not found. Names match
// case-insensitively.
func (t *SpeciesTable) Get(name string) *SpeciesTemplate {
	return t.templates[foldName(name)]
}

// Count returns the number of loaded templates.
func (t *SpeciesTable) Count() int {
	return len(t.templates)
}

// Names returns every species name, sorted.
func (t *SpeciesTable) Names() []string {
	out := make([]string, 0, len(t.templates))
	for n := range t.templates {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// foldName normalises hand-written identifiers so "Hornet" and "hornet"
// name the same species.
func foldName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
