package skillgraph

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKnowledge(t *testing.T) {
	doc := `
domains:
  Programming: [Python, SQL]
  Data Science: [Python, Statistics]
professions:
  - name: Data Scientist
    domains: [Data Science]
    skills: [Python]
    related: [Data Analyst]
`
	k, err := LoadKnowledge(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "SQL"}, k.Domains["Programming"])
	require.Len(t, k.Professions, 1)
	assert.Equal(t, "Data Scientist", k.Professions[0].Name)
	assert.Equal(t, []string{"Data Analyst"}, k.Professions[0].Related)
}

func TestLoadKnowledge_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown domain": `
domains:
  Programming: [Python]
professions:
  - name: Analyst
    domains: [Statistics]
`,
		"no domains": `
professions:
  - name: Analyst
`,
		"missing profession name": `
domains:
  Programming: [Python]
professions:
  - domains: [Programming]
`,
		"unknown field": `
domains:
  Programming: [Python]
jobs: []
`,
		"malformed": `domains: [`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadKnowledge(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalidKnowledge)
		})
	}
}

func TestLoadKnowledge_BundledSeedFile(t *testing.T) {
	f, err := os.Open("data/knowledge.yaml")
	require.NoError(t, err)
	defer f.Close()

	k, err := LoadKnowledge(f)
	require.NoError(t, err)
	assert.NotEmpty(t, k.Domains)
	assert.NotEmpty(t, k.Professions)
}
