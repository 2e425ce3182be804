package collections_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/promptlab/internal/collections"
	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/pkg/handlers"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

type mockSystem struct {
	listFn    func(ctx context.Context) (*collections.ListResult, error)
	findFn    func(ctx context.Context, id string) (*models.Collection, error)
	promptsFn func(ctx context.Context, id string) (*collections.PromptsResult, error)
	createFn  func(ctx context.Context, cmd collections.CreateCommand) (*models.Collection, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockSystem) Handler() *collections.Handler {
	return newTestHandler(m)
}

func (m *mockSystem) List(ctx context.Context) (*collections.ListResult, error) {
	return m.listFn(ctx)
}

func (m *mockSystem) Find(ctx context.Context, id string) (*models.Collection, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) Prompts(ctx context.Context, id string) (*collections.PromptsResult, error) {
	return m.promptsFn(ctx, id)
}

func (m *mockSystem) Create(ctx context.Context, cmd collections.CreateCommand) (*models.Collection, error) {
	return m.createFn(ctx, cmd)
}

func (m *mockSystem) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func newTestHandler(sys collections.System) *collections.Handler {
	return collections.NewHandler(sys, validation.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupMux(h *collections.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func sampleCollection() models.Collection {
	return models.Collection{ID: "c1", Name: "Dev"}
}

func TestHandlerList(t *testing.T) {
	c := sampleCollection()
	sys := &mockSystem{
		listFn: func(context.Context) (*collections.ListResult, error) {
			return &collections.ListResult{Collections: []models.Collection{c}, Total: 1}, nil
		},
	}

	rec := httptest.NewRecorder()
	setupMux(newTestHandler(sys)).ServeHTTP(rec, httptest.NewRequest("GET", "/collections", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result collections.ListResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Total != 1 || result.Collections[0].Name != "Dev" {
		t.Errorf("got %+v", result)
	}
}

func TestHandlerFind(t *testing.T) {
	c := sampleCollection()
	sys := &mockSystem{
		findFn: func(_ context.Context, id string) (*models.Collection, error) {
			if id == c.ID {
				return &c, nil
			}
			return nil, collections.ErrNotFound
		},
	}

	mux := setupMux(newTestHandler(sys))

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"found", "c1", http.StatusOK},
		{"not found", "missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest("GET", "/collections/"+tt.id, nil))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestHandlerPrompts(t *testing.T) {
	sys := &mockSystem{
		promptsFn: func(_ context.Context, id string) (*collections.PromptsResult, error) {
			if id != "c1" {
				return nil, collections.ErrNotFound
			}
			return &collections.PromptsResult{Prompts: []models.Prompt{{ID: "p1"}}, Total: 1}, nil
		},
	}

	mux := setupMux(newTestHandler(sys))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/collections/c1/prompts", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result collections.PromptsResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Total != 1 || result.Prompts[0].ID != "p1" {
		t.Errorf("got %+v", result)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/collections/missing/prompts", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandlerCreate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantLocs   int
	}{
		{"success", `{"name": "Dev"}`, http.StatusCreated, 0},
		{"missing name", `{}`, http.StatusUnprocessableEntity, 1},
		{"wrong types", `{"name": 1, "description": 2}`, http.StatusUnprocessableEntity, 2},
		{"malformed", `{`, http.StatusUnprocessableEntity, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &mockSystem{
				createFn: func(_ context.Context, cmd collections.CreateCommand) (*models.Collection, error) {
					return &models.Collection{ID: "new", Name: cmd.Name}, nil
				},
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/collections", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			setupMux(newTestHandler(sys)).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantLocs == 0 {
				return
			}

			var body handlers.ValidationResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(body.Detail) != tt.wantLocs {
				t.Errorf("issues = %+v, want %d", body.Detail, tt.wantLocs)
			}
		})
	}
}

func TestHandlerDelete(t *testing.T) {
	sys := &mockSystem{
		deleteFn: func(_ context.Context, id string) error {
			if id == "c1" {
				return nil
			}
			return collections.ErrNotFound
		},
	}

	mux := setupMux(newTestHandler(sys))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/collections/c1", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/collections/c1x", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
