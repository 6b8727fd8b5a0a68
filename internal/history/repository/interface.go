package repository

import (
	"context"

	"sommelier-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	MessageRepository
	ReportRepository

	// EnsureSchema creates the schema and tables when missing.
	EnsureSchema(ctx context.Context) error
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (model.ChatMessage, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]model.ChatMessage, error)
	CountMessages(ctx context.Context, userID string) (int64, error)
}

type ReportRepository interface {
	CreateReport(ctx context.Context, opt CreateReportOptions) (model.MessageReport, error)
}
