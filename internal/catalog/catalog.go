// Package catalog holds the fixed questionnaire definitions shared by
// scoring, reporting and export. The lists are ordered; question IDs are
// derived from position so the two can never drift apart.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

// Question is a single scored item of a questionnaire.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Catalog is the full set of questionnaire definitions: the Change
// Characteristics (CC) and Organizational Attributes (OA) questionnaires,
// scored 1-5 per item, and the group aspect names scored 0-5 per group.
type Catalog struct {
	CC      []Question `json:"changeCharacteristics"`
	OA      []Question `json:"organizationalAttributes"`
	Aspects []string   `json:"groupAspects"`
}

type catalogFile struct {
	ChangeCharacteristics    []string `yaml:"change_characteristics"`
	OrganizationalAttributes []string `yaml:"organizational_attributes"`
	GroupAspects             []string `yaml:"group_aspects"`
}

// Load parses the embedded catalog definition.
func Load() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(rawCatalog, &file); err != nil {
		return nil, fmt.Errorf("failed to parse questionnaire catalog: %w", err)
	}

	if len(file.ChangeCharacteristics) == 0 {
		return nil, fmt.Errorf("catalog has no change characteristics questions")
	}
	if len(file.OrganizationalAttributes) == 0 {
		return nil, fmt.Errorf("catalog has no organizational attributes questions")
	}
	if len(file.GroupAspects) == 0 {
		return nil, fmt.Errorf("catalog has no group aspects")
	}

	return &Catalog{
		CC:      numbered("CC", file.ChangeCharacteristics),
		OA:      numbered("OA", file.OrganizationalAttributes),
		Aspects: file.GroupAspects,
	}, nil
}

// MustLoad is Load for program startup; the catalog is embedded, so a
// failure here is a build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// numbered assigns positional IDs like CC_1..CC_n to the question texts.
func numbered(prefix string, texts []string) []Question {
	questions := make([]Question, len(texts))
	for i, text := range texts {
		questions[i] = Question{
			ID:   fmt.Sprintf("%s_%d", prefix, i+1),
			Text: text,
		}
	}
	return questions
}
