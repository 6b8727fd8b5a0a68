package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sommelier-srv/internal/dialogue"
	"sommelier-srv/internal/middleware"
	"sommelier-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type fakeUseCase struct {
	in  dialogue.ReplyInput
	out dialogue.ReplyOutput
	err error
}

func (f *fakeUseCase) Reply(ctx context.Context, input dialogue.ReplyInput) (dialogue.ReplyOutput, error) {
	f.in = input
	if f.err != nil {
		return dialogue.ReplyOutput{}, f.err
	}
	if input.Query == "" {
		return dialogue.ReplyOutput{}, dialogue.ErrQueryRequired
	}
	if input.UserID == "" {
		return dialogue.ReplyOutput{}, dialogue.ErrUserIDRequired
	}
	return f.out, nil
}

func setupRouter(uc dialogue.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	New(l, uc).RegisterRoutes(r.Group(""), middleware.New(l))
	return r
}

func post(t *testing.T, r *gin.Engine, body string) map[string]string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return got
}

func TestWelcome(t *testing.T) {
	r := setupRouter(&fakeUseCase{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	want := `{"message":"Welcome to the SipNSavor API! Use /chat to interact with the assistant."}`
	if w.Body.String() != want {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestChat(t *testing.T) {
	uc := &fakeUseCase{out: dialogue.ReplyOutput{Reply: "Try a Riesling.", Route: dialogue.RouteAnswer}}
	got := post(t, setupRouter(uc), `{"query":"  spicy thai food? ","user_id":" u1 "}`)

	if len(got) != 1 || got["response"] != "Try a Riesling." {
		t.Errorf("body = %v", got)
	}
	if uc.in != (dialogue.ReplyInput{UserID: "u1", Query: "spicy thai food?"}) {
		t.Errorf("input = %+v", uc.in)
	}
}

func TestChat_DegradedReplyIsAResponse(t *testing.T) {
	uc := &fakeUseCase{out: dialogue.ReplyOutput{Reply: "An unexpected error occurred while processing your request.", Degraded: true}}
	got := post(t, setupRouter(uc), `{"query":"hi","user_id":"u1"}`)
	if _, ok := got["response"]; !ok {
		t.Errorf("body = %v, want a response", got)
	}
}

func TestChat_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want string
	}{
		{"empty query", `{"query":"","user_id":"u1"}`, nil, "Query cannot be empty."},
		{"missing query and user", `{}`, nil, "Query cannot be empty."},
		{"empty user", `{"query":"hi","user_id":"  "}`, nil, "User ID is required to fetch preferences."},
		{"unexpected", `{"query":"hi","user_id":"u1"}`, errors.New("boom"), "An unexpected error occurred: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := post(t, setupRouter(&fakeUseCase{err: tt.err}), tt.body)
			if len(got) != 1 || got["error"] != tt.want {
				t.Errorf("body = %v, want error %q", got, tt.want)
			}
		})
	}
}

func TestChat_MalformedBody(t *testing.T) {
	got := post(t, setupRouter(&fakeUseCase{}), `{"query":`)
	if !strings.HasPrefix(got["error"], "An unexpected error occurred: ") {
		t.Errorf("body = %v", got)
	}
}
