package neo4jstore

import (
	"context"
	"fmt"
	"sort"

	"github.com/meikuraledutech/skillgraph"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const (
	domainSkillsQuery = `
MERGE (d:Domain {name: $domain})
WITH d
UNWIND $skills AS skill
MERGE (s:Skill {name: skill})
MERGE (d)-[:` + skillgraph.RelContainsSkill + `]->(s)`

	professionQuery = `MERGE (:Profession {name: $profession})`

	professionDomainsQuery = `
MERGE (p:Profession {name: $profession})
WITH p
UNWIND $domains AS domain
MATCH (d:Domain {name: domain})
MERGE (p)-[:` + skillgraph.RelRequiresDomain + `]->(d)`

	professionSkillsQuery = `
MERGE (p:Profession {name: $profession})
WITH p
UNWIND $skills AS skill
MERGE (s:Skill {name: skill})
MERGE (p)-[:` + skillgraph.RelRequiresSkill + `]->(s)`

	professionRelatedQuery = `
MERGE (p:Profession {name: $profession})
WITH p
UNWIND $related AS related
MERGE (r:Profession {name: related})
MERGE (p)-[:` + skillgraph.RelRelatedTo + `]->(r)`
)

type statement struct {
	query  string
	params map[string]any
}

// Seed merges the knowledge description into the graph in a single write
// transaction. Existing nodes and relationships are reused, so seeding twice
// is harmless.
func (s *Store) Seed(ctx context.Context, k *skillgraph.Knowledge) error {
	stmts := seedStatements(k)

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: s.database,
	})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, st := range stmts {
			result, err := tx.Run(ctx, st.query, st.params)
			if err != nil {
				return nil, err
			}
			if _, err := result.Consume(ctx); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("neo4jstore: seed: %w", err)
	}
	return nil
}

// seedStatements orders writes so domains exist before professions match them.
// Domains are visited in name order to keep runs reproducible.
func seedStatements(k *skillgraph.Knowledge) []statement {
	names := make([]string, 0, len(k.Domains))
	for name := range k.Domains {
		names = append(names, name)
	}
	sort.Strings(names)

	var stmts []statement
	for _, name := range names {
		stmts = append(stmts, statement{domainSkillsQuery, map[string]any{
			"domain": name,
			"skills": k.Domains[name],
		}})
	}

	for _, p := range k.Professions {
		stmts = append(stmts, statement{professionQuery, map[string]any{"profession": p.Name}})
		if len(p.Domains) > 0 {
			stmts = append(stmts, statement{professionDomainsQuery, map[string]any{
				"profession": p.Name,
				"domains":    p.Domains,
			}})
		}
		if len(p.Skills) > 0 {
			stmts = append(stmts, statement{professionSkillsQuery, map[string]any{
				"profession": p.Name,
				"skills":     p.Skills,
			}})
		}
		if len(p.Related) > 0 {
			stmts = append(stmts, statement{professionRelatedQuery, map[string]any{
				"profession": p.Name,
				"related":    p.Related,
			}})
		}
	}
	return stmts
}
