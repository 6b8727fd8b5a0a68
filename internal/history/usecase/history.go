package usecase

import (
	"context"
	"fmt"
	"strings"

	"sommelier-srv/internal/history"
	"sommelier-srv/internal/history/repository"
	"sommelier-srv/internal/model"
	"sommelier-srv/pkg/paginator"
)

func (uc *implUseCase) Record(ctx context.Context, input history.RecordInput) error {
	if uc.repo == nil {
		return nil
	}

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return history.ErrUserIDRequired
	}

	if _, err := uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		UserID:   userID,
		Query:    input.Query,
		Reply:    input.Reply,
		Route:    input.Route,
		Degraded: input.Degraded,
	}); err != nil {
		uc.l.Errorf(ctx, "history.usecase.Record: repo.CreateMessage failed: %v", err)
		return fmt.Errorf("%w: %v", history.ErrStoreFailed, err)
	}
	return nil
}

func (uc *implUseCase) List(ctx context.Context, input history.ListInput) (history.ListOutput, error) {
	if uc.repo == nil {
		return history.ListOutput{}, history.ErrDisabled
	}

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return history.ListOutput{}, history.ErrUserIDRequired
	}

	page := input.Paginate
	if page.Page < 0 || page.Limit < 0 {
		return history.ListOutput{}, history.ErrInvalidPaging
	}
	page.Adjust()

	total, err := uc.repo.CountMessages(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "history.usecase.List: repo.CountMessages failed: %v", err)
		return history.ListOutput{}, fmt.Errorf("%w: %v", history.ErrStoreFailed, err)
	}

	messages := []model.ChatMessage{}
	if int64(page.Offset()) < total {
		messages, err = uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
			UserID: userID,
			Limit:  page.Limit,
			Offset: page.Offset(),
		})
		if err != nil {
			uc.l.Errorf(ctx, "history.usecase.List: repo.ListMessages failed: %v", err)
			return history.ListOutput{}, fmt.Errorf("%w: %v", history.ErrStoreFailed, err)
		}
	}

	return history.ListOutput{
		Messages:  messages,
		Paginator: paginator.New(page, total, len(messages)),
	}, nil
}
