// Package neo4jstore reads and seeds the skills/jobs knowledge graph in Neo4j.
package neo4jstore

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// DefaultDatabase is the database holding the knowledge graph.
const DefaultDatabase = "jobsskills"

// Store implements skillgraph.GraphSource and skillgraph.GraphSeeder on top of
// the official Neo4j driver.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
}

// New creates a Store backed by the given driver. An empty database selects
// DefaultDatabase.
func New(driver neo4j.DriverWithContext, database string) *Store {
	if database == "" {
		database = DefaultDatabase
	}
	return &Store{driver: driver, database: database}
}

// Open creates a driver with basic auth, verifies connectivity and returns a
// Store using it. The caller owns the Store and must Close it.
func Open(ctx context.Context, uri, username, password, database string) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4jstore: create driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("neo4jstore: verify connectivity: %w", err)
	}
	return New(driver, database), nil
}

// Verify checks that the database is reachable.
func (s *Store) Verify(ctx context.Context) error {
	return s.driver.VerifyConnectivity(ctx)
}

// Close releases the driver and its connection pool.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Database returns the name of the database queries run against.
func (s *Store) Database() string {
	return s.database
}
