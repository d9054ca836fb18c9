package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/khulna-traveller/travel-api/internal/core/domain"
	"github.com/khulna-traveller/travel-api/internal/core/service"
)

// --- In-memory repositories backing the full middleware/handler chain ---

type memUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Insert(_ context.Context, user *domain.User) (string, error) {
	r.nextID++
	id := fmt.Sprintf("user-%d", r.nextID)
	clone := *user
	clone.ID = id
	r.users[id] = &clone
	return id, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memUserRepo) Upsert(_ context.Context, id string, fields domain.Document) (*domain.UpdateResult, error) {
	u, ok := r.users[id]
	if !ok {
		u = &domain.User{ID: id}
		r.users[id] = u
		if name, isStr := fields["name"].(string); isStr {
			u.Name = name
		}
		return &domain.UpdateResult{UpsertedID: id}, nil
	}
	if name, isStr := fields["name"].(string); isStr {
		u.Name = name
	}
	return &domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *memUserRepo) SetRole(_ context.Context, id, role string) (*domain.UpdateResult, error) {
	u, ok := r.users[id]
	if !ok {
		return &domain.UpdateResult{}, nil
	}
	u.Role = role
	return &domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) (*domain.DeleteResult, error) {
	if _, ok := r.users[id]; !ok {
		return &domain.DeleteResult{DeletedCount: 0}, nil
	}
	delete(r.users, id)
	return &domain.DeleteResult{DeletedCount: 1}, nil
}

type memContentRepo struct {
	docs   map[string]domain.Document
	nextID int
}

func newMemContentRepo() *memContentRepo {
	return &memContentRepo{docs: make(map[string]domain.Document)}
}

func (r *memContentRepo) Insert(_ context.Context, doc domain.Document) (string, error) {
	r.nextID++
	id := fmt.Sprintf("doc-%d", r.nextID)
	stored := domain.Document{"_id": id}
	for k, v := range doc {
		stored[k] = v
	}
	r.docs[id] = stored
	return id, nil
}

func (r *memContentRepo) FindByID(_ context.Context, id string) (domain.Document, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	out := make(domain.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out, nil
}

func (r *memContentRepo) FindAll(_ context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(r.docs))
	for _, d := range r.docs {
		out = append(out, d)
	}
	return out, nil
}

func (r *memContentRepo) Upsert(_ context.Context, id string, doc domain.Document) (*domain.UpdateResult, error) {
	existing, ok := r.docs[id]
	if !ok {
		stored := domain.Document{"_id": id}
		for k, v := range doc {
			stored[k] = v
		}
		r.docs[id] = stored
		return &domain.UpdateResult{UpsertedID: id}, nil
	}
	for k, v := range doc {
		existing[k] = v
	}
	return &domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *memContentRepo) Delete(_ context.Context, id string) (*domain.DeleteResult, error) {
	if _, ok := r.docs[id]; !ok {
		return &domain.DeleteResult{DeletedCount: 0}, nil
	}
	delete(r.docs, id)
	return &domain.DeleteResult{DeletedCount: 1}, nil
}

// TestRouter_AdminFlow walks the whole chain once: anonymous rejection,
// registration, login, member-level forbidden, promotion, admin success, and
// the content upsert law over HTTP. A single router instance is used because
// the prometheus request middleware registers collectors globally.
func TestRouter_AdminFlow(t *testing.T) {
	userRepo := newMemUserRepo()
	bannerRepo := newMemContentRepo()
	planRepo := newMemContentRepo()
	log := zerolog.Nop()

	e := NewRouter(Dependencies{
		Log:      log,
		Codec:    service.NewTokenCodec("secret", time.Hour),
		TokenTTL: time.Hour,
		Users:    service.NewUserService(userRepo, log),
		Banners:  service.NewContentService("banner", bannerRepo, log),
		Plans:    service.NewContentService("latestPlan", planRepo, log),
		Team:     service.NewContentService("them", newMemContentRepo(), log),
		Gallery:  service.NewContentService("gallery", newMemContentRepo(), log),
	})

	do := func(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
		var rd *strings.Reader
		if body == "" {
			rd = strings.NewReader("")
		} else {
			rd = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, rd)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	// Anonymous request to an admin route is rejected outright, with the
	// rejection rendered under the message key clients expect.
	rec := do(http.MethodGet, "/users", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous list: expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"message":"unauthorized access token"`) {
		t.Fatalf("anonymous list: unexpected 401 body %s", rec.Body.String())
	}

	// Register a member account.
	if rec := do(http.MethodPost, "/users", `{"name":"Alice","email":"a@x.com"}`, nil); rec.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d %s", rec.Code, rec.Body.String())
	}

	// Duplicate registration soft-fails without inserting.
	rec = do(http.MethodPost, "/users", `{"name":"Alice","email":"a@x.com"}`, nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "This email already exist") {
		t.Fatalf("duplicate register: got %d %s", rec.Code, rec.Body.String())
	}
	if len(userRepo.users) != 1 {
		t.Fatalf("duplicate registration must not insert, have %d users", len(userRepo.users))
	}

	// Login mints the session cookie.
	rec = do(http.MethodPost, "/auth/login", `{"email":"a@x.com"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("login did not set session cookie")
	}

	// Authenticated member is forbidden on the admin-only route.
	if rec := do(http.MethodGet, "/users", "", cookie); rec.Code != http.StatusForbidden {
		t.Fatalf("member list: expected 403, got %d", rec.Code)
	}

	// A tampered token is indistinguishable from no token: same status,
	// same envelope.
	bad := &http.Cookie{Name: "token", Value: cookie.Value + "x"}
	rec = do(http.MethodGet, "/users", "", bad)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("tampered token: expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"message":"unauthorized access token"`) {
		t.Fatalf("tampered token: unexpected 401 body %s", rec.Body.String())
	}

	// Promote the user; the role lives in the store, so the same cookie now
	// clears the guard without reissuing the credential.
	var userID string
	for id := range userRepo.users {
		userID = id
	}
	if _, err := userRepo.SetRole(context.Background(), userID, domain.RoleAdmin); err != nil {
		t.Fatalf("promote: %v", err)
	}

	rec = do(http.MethodGet, "/users", "", cookie)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "a@x.com") {
		t.Fatalf("admin list: expected 200 with users, got %d %s", rec.Code, rec.Body.String())
	}

	// Admin can mutate content; anonymous cannot.
	if rec := do(http.MethodPost, "/banners", `{"title":"x"}`, nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous banner create: expected 401, got %d", rec.Code)
	}
	if rec := do(http.MethodPost, "/banners", `{"title":"x"}`, cookie); rec.Code != http.StatusOK {
		t.Fatalf("admin banner create: expected 200, got %d %s", rec.Code, rec.Body.String())
	}

	// Upsert law over HTTP: updating an absent plan creates it there.
	rec = do(http.MethodPut, "/plans/plan-9", `{"place":"Sundarbans"}`, cookie)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"upsertedId":"plan-9"`) {
		t.Fatalf("plan upsert: got %d %s", rec.Code, rec.Body.String())
	}
	rec = do(http.MethodGet, "/plans/plan-9", "", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Sundarbans") {
		t.Fatalf("upserted plan not retrievable: %d %s", rec.Code, rec.Body.String())
	}

	// Delete twice: second call reports zero affected, never an error.
	if rec := do(http.MethodDelete, "/plans/plan-9", "", cookie); !strings.Contains(rec.Body.String(), `"deletedCount":1`) {
		t.Fatalf("first delete: %s", rec.Body.String())
	}
	if rec := do(http.MethodDelete, "/plans/plan-9", "", cookie); !strings.Contains(rec.Body.String(), `"deletedCount":0`) {
		t.Fatalf("second delete: %s", rec.Body.String())
	}

	// Logout clears the credential slot.
	rec = do(http.MethodPost, "/auth/logout", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}
	var cleared bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" && ck.Value == "" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("logout did not clear the cookie")
	}
}
