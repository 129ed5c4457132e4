package neo4jstore

import (
	"context"
	"fmt"

	"github.com/meikuraledutech/skillgraph"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// edgeRecordsQuery returns one row per directed relationship instance.
const edgeRecordsQuery = `
MATCH (n)-[r]->(m)
RETURN
  id(n)   AS sourceId,
  n.name  AS sourceName,
  id(m)   AS targetId,
  m.name  AS targetName,
  type(r) AS relationshipType`

// EdgeRecords runs the single-hop relationship query and decodes every row.
// The session is closed on every return path and no partial result is
// returned on error.
func (s *Store) EdgeRecords(ctx context.Context) ([]skillgraph.EdgeRecord, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: s.database,
	})
	defer session.Close(ctx)

	out, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, edgeRecordsQuery, nil)
		if err != nil {
			return nil, err
		}
		records, err := result.Collect(ctx)
		if err != nil {
			return nil, err
		}

		edges := make([]skillgraph.EdgeRecord, 0, len(records))
		for _, rec := range records {
			edges = append(edges, decodeEdgeRecord(rec))
		}
		return edges, nil
	})
	if err != nil {
		return nil, fmt.Errorf("neo4jstore: query edge records: %w", err)
	}

	return out.([]skillgraph.EdgeRecord), nil
}

// decodeEdgeRecord maps a query row to an EdgeRecord. Integer ids are
// stringified; missing or unusable ids decode to "" so the aggregator can skip
// the row.
func decodeEdgeRecord(rec *neo4j.Record) skillgraph.EdgeRecord {
	return skillgraph.EdgeRecord{
		SourceID:         recordID(rec, "sourceId"),
		SourceName:       recordString(rec, "sourceName"),
		TargetID:         recordID(rec, "targetId"),
		TargetName:       recordString(rec, "targetName"),
		RelationshipType: recordString(rec, "relationshipType"),
	}
}

func recordID(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok {
		return ""
	}
	id, _ := skillgraph.NormalizeID(v)
	return id
}

func recordString(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
