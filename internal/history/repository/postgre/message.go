package postgre

import (
	"context"
	"fmt"
	"time"

	"sommelier-srv/internal/history/repository"
	"sommelier-srv/internal/model"

	"github.com/google/uuid"
)

// CreateMessage inserts one dialogue turn.
func (r *implRepository) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.ChatMessage, error) {
	msg := model.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    opt.UserID,
		Query:     opt.Query,
		Reply:     opt.Reply,
		Route:     opt.Route,
		Degraded:  opt.Degraded,
		CreatedAt: time.Now().UTC(),
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, query, reply, route, degraded, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.table("chat_messages"))

	if _, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.UserID, msg.Query, msg.Reply, msg.Route, msg.Degraded, msg.CreatedAt,
	); err != nil {
		r.l.Errorf(ctx, "history.repository.postgre.CreateMessage: exec failed: %v", err)
		return model.ChatMessage{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	return msg, nil
}

// ListMessages returns a user's turns, newest first.
func (r *implRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.ChatMessage, error) {
	query, args := r.buildListMessagesQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "history.repository.postgre.ListMessages: query failed: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	messages := make([]model.ChatMessage, 0)
	for rows.Next() {
		var msg model.ChatMessage
		if err := rows.Scan(
			&msg.ID, &msg.UserID, &msg.Query, &msg.Reply, &msg.Route, &msg.Degraded, &msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", repository.ErrFailedToList, err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	return messages, nil
}

// CountMessages returns the number of turns recorded for a user.
func (r *implRepository) CountMessages(ctx context.Context, userID string) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, r.buildCountMessagesQuery(), userID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "history.repository.postgre.CountMessages: query failed: %v", err)
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToCount, err)
	}
	return total, nil
}
