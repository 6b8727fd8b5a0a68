package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sommelier-srv/internal/history"
	"sommelier-srv/internal/middleware"
	"sommelier-srv/internal/model"
	"sommelier-srv/pkg/log"
	"sommelier-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
)

type fakeUseCase struct {
	listIn   history.ListInput
	reportIn history.ReportInput
	listErr  error
}

func (f *fakeUseCase) Record(ctx context.Context, input history.RecordInput) error { return nil }

func (f *fakeUseCase) List(ctx context.Context, input history.ListInput) (history.ListOutput, error) {
	f.listIn = input
	if f.listErr != nil {
		return history.ListOutput{}, f.listErr
	}
	messages := []model.ChatMessage{{
		ID: "m1", UserID: input.UserID, Query: "hi", Reply: "Hello", Route: "greeting",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
	return history.ListOutput{
		Messages:  messages,
		Paginator: paginator.New(input.Paginate, 11, len(messages)),
	}, nil
}

func (f *fakeUseCase) Report(ctx context.Context, input history.ReportInput) (model.MessageReport, error) {
	f.reportIn = input
	if input.Sender == "admin" {
		return model.MessageReport{}, history.ErrInvalidSender
	}
	return model.MessageReport{ID: "r1", UserID: input.UserID, Text: input.Text, Sender: input.Sender, SentAt: input.SentAt}, nil
}

func setupRouter(uc history.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	New(l, uc).RegisterRoutes(r.Group(""), middleware.New(l))
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListHistory(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(setupRouter(uc), http.MethodGet, "/api/v1/users/u1/history?page=2&limit=5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.listIn != (history.ListInput{UserID: "u1", Paginate: paginator.PaginateQuery{Page: 2, Limit: 5}}) {
		t.Errorf("input = %+v", uc.listIn)
	}

	var body struct {
		Data listHistoryResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data.Messages) != 1 || body.Data.Messages[0].Route != "greeting" {
		t.Errorf("messages = %+v", body.Data.Messages)
	}
	if p := body.Data.Paginator; p.Total != 11 || p.TotalPages != 3 || p.CurrentPage != 2 || !p.HasNext || !p.HasPrev {
		t.Errorf("paginator = %+v", p)
	}
	if !strings.Contains(w.Body.String(), `"created_at":"2024-01-02T03:04:05Z"`) {
		t.Errorf("created_at not formatted: %s", w.Body.String())
	}
}

func TestListHistory_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		listErr error
		want    int
	}{
		{"bad limit", "/api/v1/users/u1/history?limit=abc", nil, http.StatusBadRequest},
		{"disabled", "/api/v1/users/u1/history", history.ErrDisabled, http.StatusServiceUnavailable},
		{"store", "/api/v1/users/u1/history", history.ErrStoreFailed, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(setupRouter(&fakeUseCase{listErr: tt.listErr}), http.MethodGet, tt.path, "")
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestCreateReport(t *testing.T) {
	uc := &fakeUseCase{}
	body := `{"text":"wrong pairing","sender":"bot","timestamp":"2024-05-01T10:00:00Z"}`
	w := serve(setupRouter(uc), http.MethodPost, "/api/v1/users/u1/reports", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.reportIn.UserID != "u1" || uc.reportIn.Sender != "bot" || uc.reportIn.SentAt == nil {
		t.Errorf("input = %+v", uc.reportIn)
	}
	if !strings.Contains(w.Body.String(), `"sent_at":"2024-05-01T10:00:00Z"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestCreateReport_Errors(t *testing.T) {
	r := setupRouter(&fakeUseCase{})

	if w := serve(r, http.MethodPost, "/api/v1/users/u1/reports", `{"text":`); w.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d", w.Code)
	}
	if w := serve(r, http.MethodPost, "/api/v1/users/u1/reports", `{"text":"x","sender":"admin"}`); w.Code != http.StatusBadRequest {
		t.Errorf("invalid sender status = %d", w.Code)
	}
}
