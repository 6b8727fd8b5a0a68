package postgre

import (
	"fmt"

	"sommelier-srv/internal/history/repository"
)

// buildListMessagesQuery - Build query and args for ListMessages
func (r *implRepository) buildListMessagesQuery(opt repository.ListMessagesOptions) (string, []any) {
	query := fmt.Sprintf(`
		SELECT id, user_id, query, reply, route, degraded, created_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, r.table("chat_messages"))
	args := []any{opt.UserID}

	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opt.Offset > 0 {
		args = append(args, opt.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return query, args
}

func (r *implRepository) buildCountMessagesQuery() string {
	return fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE user_id = $1`, r.table("chat_messages"))
}
