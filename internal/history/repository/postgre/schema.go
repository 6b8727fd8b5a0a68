package postgre

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"sommelier-srv/internal/history/repository"

	"github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

func (r *implRepository) schemaStatements() string {
	return strings.ReplaceAll(schemaSQL, "{{schema}}", pq.QuoteIdentifier(r.schema))
}

// EnsureSchema runs the idempotent DDL in schema.sql.
func (r *implRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, r.schemaStatements()); err != nil {
		r.l.Errorf(ctx, "history.repository.postgre.EnsureSchema: exec failed: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
	}
	return nil
}
