package neo4jstore

import (
	"testing"

	"github.com/meikuraledutech/skillgraph"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
)

func record(values ...any) *neo4j.Record {
	return &neo4j.Record{
		Keys:   []string{"sourceId", "sourceName", "targetId", "targetName", "relationshipType"},
		Values: values,
	}
}

func TestDecodeEdgeRecord(t *testing.T) {
	tests := []struct {
		name string
		in   *neo4j.Record
		want skillgraph.EdgeRecord
	}{
		{
			name: "integer ids",
			in:   record(int64(1), "Python", int64(2), "Data Scientist", "REQUIRED_FOR"),
			want: skillgraph.EdgeRecord{SourceID: "1", SourceName: "Python", TargetID: "2", TargetName: "Data Scientist", RelationshipType: "REQUIRED_FOR"},
		},
		{
			name: "null names",
			in:   record(int64(3), nil, int64(3), nil, "RELATED_TO"),
			want: skillgraph.EdgeRecord{SourceID: "3", TargetID: "3", RelationshipType: "RELATED_TO"},
		},
		{
			name: "null id",
			in:   record(nil, "Orphan", int64(4), "Go", "CONTAINS_SKILL"),
			want: skillgraph.EdgeRecord{SourceName: "Orphan", TargetID: "4", TargetName: "Go", RelationshipType: "CONTAINS_SKILL"},
		},
		{
			name: "non-string name",
			in:   record(int64(5), int64(2024), int64(6), "Go", "R"),
			want: skillgraph.EdgeRecord{SourceID: "5", SourceName: "2024", TargetID: "6", TargetName: "Go", RelationshipType: "R"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeEdgeRecord(tt.in))
		})
	}
}

func TestDecodeEdgeRecord_MissingKeys(t *testing.T) {
	got := decodeEdgeRecord(&neo4j.Record{Keys: []string{"sourceId"}, Values: []any{int64(1)}})

	assert.Equal(t, skillgraph.EdgeRecord{SourceID: "1"}, got)
}

func TestDecodedRecordsAggregate(t *testing.T) {
	rows := []*neo4j.Record{
		record(int64(1), "Python", int64(2), "DataScientist", "REQUIRED_FOR"),
		record(int64(1), "Python", int64(3), "Analyst", "REQUIRED_FOR"),
		record(int64(1), "Python", int64(2), "DataScientist", "REQUIRED_FOR"),
	}
	records := make([]skillgraph.EdgeRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, decodeEdgeRecord(r))
	}

	g := skillgraph.Aggregate(records)

	assert.Equal(t, []skillgraph.Node{
		{ID: "1", Label: "Python"},
		{ID: "2", Label: "DataScientist"},
		{ID: "3", Label: "Analyst"},
	}, g.Nodes)
	assert.Equal(t, []skillgraph.Edge{
		{From: "1", To: "2", Label: "REQUIRED_FOR"},
		{From: "1", To: "3", Label: "REQUIRED_FOR"},
	}, g.Edges)
}

func TestNew_DefaultDatabase(t *testing.T) {
	assert.Equal(t, DefaultDatabase, New(nil, "").Database())
	assert.Equal(t, "graph", New(nil, "graph").Database())
}
