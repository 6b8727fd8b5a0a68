package history

import (
	"context"

	"sommelier-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Record stores one dialogue turn. It is a no-op when the transcript is disabled.
	Record(ctx context.Context, input RecordInput) error
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Report(ctx context.Context, input ReportInput) (model.MessageReport, error)
}
