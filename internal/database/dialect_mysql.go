package database

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct{}

// NewMySQLDialect creates a new MySQL dialect
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

func (d *MySQLDialect) DSN(config DialectConfig) string {
	return config.URL
}

func (d *MySQLDialect) RewriteQuery(query string) string {
	// MySQL uses ? placeholders like SQLite, no rewrite needed
	return query
}

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	// Configure connection pool for MySQL
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	return nil
}

func (d *MySQLDialect) SchemaQueries() []string {
	// MySQL has no CREATE INDEX IF NOT EXISTS, so the pair_id index is
	// declared inline with the table
	return []string{
		`CREATE TABLE IF NOT EXISTS guesses (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			guesser_id VARCHAR(64) NOT NULL,
			pair_id INT NOT NULL,
			correct BOOLEAN NOT NULL,
			timestamp DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
			INDEX idx_guesses_pair_id (pair_id)
		);`,
		`CREATE TABLE IF NOT EXISTS games (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			guesser_id VARCHAR(64) NOT NULL,
			score INT NOT NULL,
			total_questions INT NOT NULL,
			timestamp DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
		);`,
	}
}
