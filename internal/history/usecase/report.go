package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sommelier-srv/internal/event"
	"sommelier-srv/internal/history"
	"sommelier-srv/internal/history/repository"
	"sommelier-srv/internal/model"

	"github.com/google/uuid"
)

// Report stores a reported message (when the transcript is enabled) and publishes message.reported.
func (uc *implUseCase) Report(ctx context.Context, input history.ReportInput) (model.MessageReport, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.Text = strings.TrimSpace(input.Text)
	input.Sender = strings.ToLower(strings.TrimSpace(input.Sender))

	if input.UserID == "" {
		return model.MessageReport{}, history.ErrUserIDRequired
	}
	if input.Text == "" {
		return model.MessageReport{}, history.ErrTextRequired
	}
	if input.Sender != history.SenderUser && input.Sender != history.SenderBot {
		return model.MessageReport{}, history.ErrInvalidSender
	}

	report, err := uc.storeReport(ctx, input)
	if err != nil {
		return model.MessageReport{}, err
	}

	if err := uc.publisher.Publish(ctx, event.Event{
		Type:   event.TypeMessageReported,
		UserID: report.UserID,
		Payload: event.MessageReportedPayload{
			ReportID: report.ID,
			Text:     report.Text,
			Sender:   report.Sender,
		},
	}); err != nil {
		uc.l.Warnf(ctx, "history.usecase.Report: publish event failed: %v", err)
	}

	uc.l.Infof(ctx, "history.usecase.Report: user %s reported a %s message", report.UserID, report.Sender)
	return report, nil
}

func (uc *implUseCase) storeReport(ctx context.Context, input history.ReportInput) (model.MessageReport, error) {
	if uc.repo == nil {
		return model.MessageReport{
			ID:        uuid.New().String(),
			UserID:    input.UserID,
			Text:      input.Text,
			Sender:    input.Sender,
			SentAt:    input.SentAt,
			CreatedAt: time.Now().UTC(),
		}, nil
	}

	report, err := uc.repo.CreateReport(ctx, repository.CreateReportOptions{
		UserID: input.UserID,
		Text:   input.Text,
		Sender: input.Sender,
		SentAt: input.SentAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "history.usecase.Report: repo.CreateReport failed: %v", err)
		return model.MessageReport{}, fmt.Errorf("%w: %v", history.ErrStoreFailed, err)
	}
	return report, nil
}
