package http

import (
	"time"

	"sommelier-srv/internal/history"
	"sommelier-srv/internal/model"
	"sommelier-srv/pkg/paginator"
	"sommelier-srv/pkg/response"
)

type listHistoryReq struct {
	UserID string `form:"-"`
	paginator.PaginateQuery
}

func (r listHistoryReq) toInput() history.ListInput {
	return history.ListInput{UserID: r.UserID, Paginate: r.PaginateQuery}
}

type createReportReq struct {
	UserID    string     `json:"-"`
	Text      string     `json:"text"`
	Sender    string     `json:"sender"`
	Timestamp *time.Time `json:"timestamp"`
}

func (r createReportReq) toInput() history.ReportInput {
	return history.ReportInput{UserID: r.UserID, Text: r.Text, Sender: r.Sender, SentAt: r.Timestamp}
}

type messageResp struct {
	ID        string            `json:"id"`
	Query     string            `json:"query"`
	Reply     string            `json:"reply"`
	Route     string            `json:"route"`
	Degraded  bool              `json:"degraded"`
	CreatedAt response.DateTime `json:"created_at"`
}

type listHistoryResp struct {
	Messages  []messageResp               `json:"messages"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type reportResp struct {
	ID        string             `json:"id"`
	Text      string             `json:"text"`
	Sender    string             `json:"sender"`
	SentAt    *response.DateTime `json:"sent_at,omitempty"`
	CreatedAt response.DateTime  `json:"created_at"`
}

func (h *handler) newListHistoryResp(out history.ListOutput) listHistoryResp {
	resp := listHistoryResp{
		Messages:  make([]messageResp, 0, len(out.Messages)),
		Paginator: out.Paginator.ToResponse(),
	}
	for _, m := range out.Messages {
		resp.Messages = append(resp.Messages, messageResp{
			ID:        m.ID,
			Query:     m.Query,
			Reply:     m.Reply,
			Route:     m.Route,
			Degraded:  m.Degraded,
			CreatedAt: response.DateTime(m.CreatedAt),
		})
	}
	return resp
}

func (h *handler) newReportResp(r model.MessageReport) reportResp {
	resp := reportResp{
		ID:        r.ID,
		Text:      r.Text,
		Sender:    r.Sender,
		CreatedAt: response.DateTime(r.CreatedAt),
	}
	if r.SentAt != nil {
		sentAt := response.DateTime(*r.SentAt)
		resp.SentAt = &sentAt
	}
	return resp
}
