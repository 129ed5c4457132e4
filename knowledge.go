package skillgraph

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Relationship types written when seeding the knowledge graph.
const (
	RelContainsSkill  = "CONTAINS_SKILL"
	RelRequiresDomain = "REQUIRES_DOMAIN"
	RelRequiresSkill  = "REQUIRES_SKILL"
	RelRelatedTo      = "RELATED_TO"
)

// Knowledge describes the skills/jobs graph: skill domains and the professions
// that require them.
type Knowledge struct {
	Domains     map[string][]string `yaml:"domains" validate:"required,min=1,dive,keys,required,endkeys,dive,required"`
	Professions []Profession        `yaml:"professions" validate:"dive"`
}

// Profession is a job title with its required domains and skills and the
// professions it is related to.
type Profession struct {
	Name    string   `yaml:"name" validate:"required"`
	Domains []string `yaml:"domains" validate:"dive,required"`
	Skills  []string `yaml:"skills" validate:"dive,required"`
	Related []string `yaml:"related" validate:"dive,required"`
}

// LoadKnowledge decodes and validates a YAML knowledge description.
func LoadKnowledge(r io.Reader) (*Knowledge, error) {
	var k Knowledge
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&k); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKnowledge, err)
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return &k, nil
}

// Validate checks field constraints and that every profession references
// declared domains only.
func (k *Knowledge) Validate() error {
	if err := validate.Struct(k); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidKnowledge, describe(err))
	}
	for _, p := range k.Professions {
		for _, d := range p.Domains {
			if _, ok := k.Domains[d]; !ok {
				return fmt.Errorf("%w: profession %q references unknown domain %q", ErrInvalidKnowledge, p.Name, d)
			}
		}
	}
	return nil
}
