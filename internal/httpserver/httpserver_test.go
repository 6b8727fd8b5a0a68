package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"sommelier-srv/internal/middleware"
	"sommelier-srv/pkg/log"
	pkgRedis "sommelier-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type memRedis struct {
	mu      sync.Mutex
	data    map[string]string
	pingErr error
}

func newMemRedis() *memRedis {
	return &memRedis{data: map[string]string{}}
}

func (m *memRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	default:
		m.data[key] = fmt.Sprint(v)
	}
	return nil
}

func (m *memRedis) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", pkgRedis.ErrKeyNotFound
	}
	return v, nil
}

func (m *memRedis) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memRedis) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

func (m *memRedis) Ping(ctx context.Context) error { return m.pingErr }
func (m *memRedis) Close() error                   { return nil }

// scriptedLLM answers by recognizing which prompt it was sent.
type scriptedLLM struct {
	extract   string
	relevance string
	answer    string
}

func (s *scriptedLLM) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	switch {
	case strings.HasPrefix(systemPrompt, "You are a helpful assistant."):
		return s.extract, nil
	case strings.HasPrefix(systemPrompt, "Does the following message"):
		return s.relevance, nil
	default:
		return s.answer, nil
	}
}

func newTestServer(t *testing.T, rdb *memRedis, llm *scriptedLLM) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:        8000,
		Mode:        gin.TestMode,
		Environment: "production",
		RedisClient: rdb,
		LLM:         llm,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("mapHandlers: %v", err)
	}
	return srv
}

func serve(srv *HTTPServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func chat(t *testing.T, srv *HTTPServer, userID, query string) string {
	t.Helper()
	body := fmt.Sprintf(`{"query":%q,"user_id":%q}`, query, userID)
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := serve(srv, req)
	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d", w.Code)
	}
	var got struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Error != "" {
		t.Fatalf("chat error = %q", got.Error)
	}
	return got.Response
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Port: 8000, Mode: gin.TestMode, LLM: &scriptedLLM{}}); err == nil {
		t.Error("missing redis accepted")
	}
	if _, err := New(log.NewNop(), Config{Port: 8000, Mode: gin.TestMode, RedisClient: newMemRedis()}); err == nil {
		t.Error("missing llm accepted")
	}
}

func TestChatUpdateThenRecall(t *testing.T) {
	rdb := newMemRedis()
	llm := &scriptedLLM{extract: `{"favorite_wine": "Merlot", "vegan_friendly": true}`}
	srv := newTestServer(t, rdb, llm)

	got := chat(t, srv, "u1", "hi, my favorite wine is Merlot and I'm vegan")
	if got != "✅ I’ve updated your preferences: Favorite Wine, Vegan Friendly." {
		t.Errorf("update reply = %q", got)
	}
	stored := rdb.data["users/u1/chatbot_preferences"]
	if !strings.Contains(stored, `"favorite_wine":"Merlot"`) || !strings.Contains(stored, `"vegan_friendly":true`) {
		t.Errorf("stored = %s", stored)
	}

	llm.extract = "{}"
	got = chat(t, srv, "u1", "what are my preferences")
	want := "Hello, there! 👋\n\nHere are your current preferences:\n➡ Favorite Wine: Merlot\n➡ Vegan Friendly: Yes"
	if got != want {
		t.Errorf("recall = %q, want %q", got, want)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/preferences", nil)
	if w := serve(srv, req); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"favorite_wine":"Merlot"`) {
		t.Errorf("GET preferences = %d %s", w.Code, w.Body.String())
	}
}

func TestChatOffTopicAndAnswer(t *testing.T) {
	llm := &scriptedLLM{extract: "{}", relevance: "no", answer: "A Sauternes."}
	srv := newTestServer(t, newMemRedis(), llm)

	if got := chat(t, srv, "u2", "who won the match?"); !strings.HasPrefix(got, "🍇 I'm your sommelier assistant") {
		t.Errorf("off topic reply = %q", got)
	}

	llm.relevance = "Yes."
	if got := chat(t, srv, "u2", "dessert wine for foie gras?"); got != "A Sauternes." {
		t.Errorf("answer = %q", got)
	}
}

func TestHistoryDisabledWithoutPostgres(t *testing.T) {
	srv := newTestServer(t, newMemRedis(), &scriptedLLM{})
	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/history", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("history status = %d, want 503", w.Code)
	}
}

func TestSystemRoutes(t *testing.T) {
	rdb := newMemRedis()
	srv := newTestServer(t, rdb, &scriptedLLM{})

	for _, path := range []string{"/health", "/live", "/ready", "/"} {
		if w := serve(srv, httptest.NewRequest(http.MethodGet, path, nil)); w.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, w.Code)
		}
	}

	rdb.pingErr = errors.New("connection refused")
	if w := serve(srv, httptest.NewRequest(http.MethodGet, "/ready", nil)); w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /ready with redis down = %d, want 503", w.Code)
	}

	// Swagger is not exposed in production.
	if w := serve(srv, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)); w.Code != http.StatusNotFound {
		t.Errorf("GET /swagger in production = %d, want 404", w.Code)
	}
}

func TestMiddlewares(t *testing.T) {
	srv := newTestServer(t, newMemRedis(), &scriptedLLM{})

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(srv, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("allow origin = %q", got)
	}

	w = serve(srv, httptest.NewRequest(http.MethodGet, "/live", nil))
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("missing request id header")
	}
}
