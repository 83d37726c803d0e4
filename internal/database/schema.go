package database

import "fmt"

// EnsureSchema creates the stats tables if they don't exist. There is no
// migration path: the schema is fixed for the life of the deployment.
func (db *DB) EnsureSchema() error {
	for _, query := range db.Dialect.SchemaQueries() {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
