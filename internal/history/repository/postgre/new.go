package postgre

import (
	"database/sql"

	"sommelier-srv/internal/history/repository"
	"sommelier-srv/pkg/log"

	"github.com/lib/pq"
)

const defaultSchema = "public"

type implRepository struct {
	db     *sql.DB
	schema string
	l      log.Logger
}

// New - Factory function. Tables live in schema (public when empty).
func New(db *sql.DB, schema string, l log.Logger) repository.Repository {
	if schema == "" {
		schema = defaultSchema
	}
	return &implRepository{
		db:     db,
		schema: schema,
		l:      l,
	}
}

// table returns the schema qualified, quoted table name.
func (r *implRepository) table(name string) string {
	return pq.QuoteIdentifier(r.schema) + "." + pq.QuoteIdentifier(name)
}
