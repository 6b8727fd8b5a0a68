package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"sommelier-srv/internal/event"
	"sommelier-srv/internal/middleware"
	"sommelier-srv/internal/model"
	"sommelier-srv/internal/preference"
	"sommelier-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type fakeUseCase struct {
	record model.Preferences
	getErr error
	putErr error
	put    *preference.PutInput
}

func (f *fakeUseCase) Get(ctx context.Context, userID string) (model.Preferences, error) {
	return f.record, f.getErr
}

func (f *fakeUseCase) Put(ctx context.Context, input preference.PutInput) error {
	f.put = &input
	return f.putErr
}

func (f *fakeUseCase) DetectUpdate(ctx context.Context, input preference.DetectUpdateInput) (preference.UpdateResult, error) {
	return preference.UpdateResult{}, nil
}

func setupRouter(uc preference.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	New(l, uc).RegisterRoutes(r.Group(""), middleware.New(l))
	return r
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      preferencesResp `json:"data"`
	Errors    []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestGetPreferences(t *testing.T) {
	uc := &fakeUseCase{record: model.Preferences{FavoriteWine: "merlot", VeganFriendly: true}}
	r := setupRouter(uc)

	w, env := do(t, r, http.MethodGet, "/api/v1/users/u1/preferences", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if env.Data.UserID != "u1" {
		t.Errorf("user_id = %q, want u1", env.Data.UserID)
	}
	if env.Data.Preferences.FavoriteWine != "merlot" || !env.Data.Preferences.VeganFriendly {
		t.Errorf("preferences = %+v", env.Data.Preferences)
	}
	want := "Here are your current preferences:\n➡ Favorite Wine: merlot\n➡ Vegan Friendly: Yes"
	if env.Data.Rendered != want {
		t.Errorf("rendered = %q, want %q", env.Data.Rendered, want)
	}
}

func TestGetPreferences_StoreUnavailable(t *testing.T) {
	uc := &fakeUseCase{getErr: preference.ErrStoreUnavailable}
	r := setupRouter(uc)

	w, env := do(t, r, http.MethodGet, "/api/v1/users/u1/preferences", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	if env.ErrorCode != http.StatusServiceUnavailable {
		t.Errorf("error_code = %d", env.ErrorCode)
	}
}

func TestGetPreferences_BlankUserID(t *testing.T) {
	r := setupRouter(&fakeUseCase{})

	w, _ := do(t, r, http.MethodGet, "/api/v1/users/%20/preferences", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestPutPreferences(t *testing.T) {
	uc := &fakeUseCase{}
	r := setupRouter(uc)

	body := `{"name":" Ana ","gluten_free":"yes","favorite_beer":"IPA","sweet_or_dry":null}`
	w, env := do(t, r, http.MethodPut, "/api/v1/users/u1/preferences", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if uc.put == nil {
		t.Fatal("Put was not called")
	}

	want := model.Preferences{Name: "Ana", FavoriteBeer: "IPA", GlutenFree: true}
	if uc.put.Preferences != want {
		t.Errorf("stored = %+v, want %+v", uc.put.Preferences, want)
	}
	if uc.put.Source != event.SourceAPI {
		t.Errorf("source = %q, want %q", uc.put.Source, event.SourceAPI)
	}
	wantFields := []string{model.PrefFavoriteBeer, model.PrefSweetOrDry, model.PrefGlutenFree}
	if !reflect.DeepEqual(uc.put.Fields, wantFields) {
		t.Errorf("fields = %v, want %v", uc.put.Fields, wantFields)
	}
	if env.Data.Preferences.Name != "Ana" {
		t.Errorf("response name = %q", env.Data.Preferences.Name)
	}
}

func TestPutPreferences_Validation(t *testing.T) {
	uc := &fakeUseCase{}
	r := setupRouter(uc)

	body := `{"favorite_color":"blue","vegan_friendly":"maybe","favorite_wine":["a"]}`
	w, env := do(t, r, http.MethodPut, "/api/v1/users/u1/preferences", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if uc.put != nil {
		t.Error("Put called on invalid body")
	}
	if len(env.Errors) != 3 {
		t.Errorf("errors = %+v, want 3 entries", env.Errors)
	}
}

func TestPutPreferences_MalformedBody(t *testing.T) {
	r := setupRouter(&fakeUseCase{})

	w, env := do(t, r, http.MethodPut, "/api/v1/users/u1/preferences", `[1,2]`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env.Message != errInvalidBody.Message {
		t.Errorf("message = %q", env.Message)
	}
}

func TestPutPreferences_StoreUnavailable(t *testing.T) {
	uc := &fakeUseCase{putErr: errors.Join(preference.ErrStoreUnavailable, errors.New("dial tcp"))}
	r := setupRouter(uc)

	w, _ := do(t, r, http.MethodPut, "/api/v1/users/u1/preferences", `{"favorite_wine":"rioja"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}
