package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/promptlab/pkg/handlers"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRespondJSON(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		data       any
		wantStatus int
	}{
		{
			name:       "200 with map",
			status:     http.StatusOK,
			data:       map[string]string{"status": "healthy"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "201 with struct",
			status:     http.StatusCreated,
			data:       struct{ ID string }{ID: "abc"},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handlers.RespondJSON(rec, tt.status, tt.data)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatus {
				t.Errorf("status: got %d, want %d", res.StatusCode, tt.wantStatus)
			}
			if ct := res.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("content-type: got %s", ct)
			}

			body, _ := io.ReadAll(res.Body)
			var parsed map[string]any
			if err := json.Unmarshal(body, &parsed); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		err        error
		wantDetail string
	}{
		{"client error exposes message", http.StatusNotFound, errors.New("prompt not found"), "prompt not found"},
		{"bad request", http.StatusBadRequest, errors.New("collection not found"), "collection not found"},
		{"server error hides message", http.StatusInternalServerError, errors.New("boom"), "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handlers.RespondError(rec, discard, tt.status, tt.err)

			if rec.Code != tt.status {
				t.Errorf("status: got %d, want %d", rec.Code, tt.status)
			}

			var body handlers.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Detail != tt.wantDetail {
				t.Errorf("detail: got %q, want %q", body.Detail, tt.wantDetail)
			}
		})
	}
}

func TestRespondErrorValidation(t *testing.T) {
	verr := &validation.Error{}
	verr.Add(
		validation.Issue{Loc: []string{"body", "title"}, Msg: "Field required", Type: "missing"},
		validation.Issue{Loc: []string{"body", "content"}, Msg: "Field required", Type: "missing"},
	)

	rec := httptest.NewRecorder()
	handlers.RespondError(rec, discard, http.StatusUnprocessableEntity, verr)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status: got %d, want 422", rec.Code)
	}

	var body handlers.ValidationResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Detail) != 2 {
		t.Fatalf("issues: got %d, want 2", len(body.Detail))
	}
	if body.Detail[1].Loc[1] != "content" {
		t.Errorf("second issue loc: got %v", body.Detail[1].Loc)
	}
}
