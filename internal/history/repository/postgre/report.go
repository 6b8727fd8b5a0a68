package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sommelier-srv/internal/history/repository"
	"sommelier-srv/internal/model"

	"github.com/google/uuid"
)

// CreateReport stores a reported message.
func (r *implRepository) CreateReport(ctx context.Context, opt repository.CreateReportOptions) (model.MessageReport, error) {
	report := model.MessageReport{
		ID:        uuid.New().String(),
		UserID:    opt.UserID,
		Text:      opt.Text,
		Sender:    opt.Sender,
		SentAt:    opt.SentAt,
		CreatedAt: time.Now().UTC(),
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, text, sender, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.table("message_reports"))

	if _, err := r.db.ExecContext(ctx, query,
		report.ID, report.UserID, report.Text, report.Sender, nullTime(report.SentAt), report.CreatedAt,
	); err != nil {
		r.l.Errorf(ctx, "history.repository.postgre.CreateReport: exec failed: %v", err)
		return model.MessageReport{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	return report, nil
}

// nullTime - Convert an optional timestamp to a database value
func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
