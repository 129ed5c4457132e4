package skillgraph

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EdgeRecord is one row of the graph-data query: a single directed relationship
// instance and the two endpoint nodes it connects.
// An empty name means the store returned no name for that node.
type EdgeRecord struct {
	SourceID         string `json:"sourceId"`
	SourceName       string `json:"sourceName"`
	TargetID         string `json:"targetId"`
	TargetName       string `json:"targetName"`
	RelationshipType string `json:"relationshipType"`
}

// UnmarshalJSON accepts numeric or string ids and stores both in string form,
// so 42 and "42" decode to the same id.
func (r *EdgeRecord) UnmarshalJSON(b []byte) error {
	var raw struct {
		SourceID         json.RawMessage `json:"sourceId"`
		SourceName       *string         `json:"sourceName"`
		TargetID         json.RawMessage `json:"targetId"`
		TargetName       *string         `json:"targetName"`
		RelationshipType string          `json:"relationshipType"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("skillgraph: decode edge record: %w", err)
	}

	src, err := decodeID(raw.SourceID)
	if err != nil {
		return fmt.Errorf("skillgraph: decode sourceId: %w", err)
	}
	dst, err := decodeID(raw.TargetID)
	if err != nil {
		return fmt.Errorf("skillgraph: decode targetId: %w", err)
	}
	*r = EdgeRecord{
		SourceID:         src,
		SourceName:       deref(raw.SourceName),
		TargetID:         dst,
		TargetName:       deref(raw.TargetName),
		RelationshipType: raw.RelationshipType,
	}
	return nil
}

// Node is a visual vertex: one graph entity.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Edge is a visual directed connection labeled with the relationship type.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// Graph is the visualization payload served by GET /api/graph-data.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// decodeID reads a JSON id that is either a string or a number.
// A missing or null id decodes to "".
func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	id, ok := NormalizeID(v)
	if !ok {
		return "", fmt.Errorf("unsupported id %s", raw)
	}
	return id, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
