package pagination_test

import (
	"net/url"
	"testing"

	"github.com/JaimeStill/promptlab/pkg/pagination"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

var cfg = pagination.Config{MaxLimit: 50}

func TestWindowFromQuery(t *testing.T) {
	tests := []struct {
		name string
		qs   string
		want pagination.Window
	}{
		{"absent is unbounded", "", pagination.Window{}},
		{"limit and offset", "limit=10&offset=5", pagination.Window{Offset: 5, Limit: 10}},
		{"limit clamped", "limit=500", pagination.Window{Limit: 50}},
		{"offset only", "offset=3", pagination.Window{Offset: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.qs)
			got, err := pagination.WindowFromQuery(values, cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWindowFromQueryInvalid(t *testing.T) {
	tests := []struct {
		name     string
		qs       string
		wantLocs []string
	}{
		{"non-integer limit", "limit=ten", []string{"limit"}},
		{"zero limit", "limit=0", []string{"limit"}},
		{"negative offset", "offset=-1", []string{"offset"}},
		{"both reported", "limit=x&offset=y", []string{"limit", "offset"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.qs)
			_, err := pagination.WindowFromQuery(values, cfg)

			verr, ok := validation.As(err)
			if !ok {
				t.Fatalf("error: got %v, want validation error", err)
			}
			if len(verr.Issues) != len(tt.wantLocs) {
				t.Fatalf("issues: got %v", verr.Issues)
			}
			for i, loc := range tt.wantLocs {
				if verr.Issues[i].Loc[0] != "query" || verr.Issues[i].Loc[1] != loc {
					t.Errorf("issue %d loc: got %v, want [query %s]", i, verr.Issues[i].Loc, loc)
				}
			}
		})
	}
}

func TestApply(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		window pagination.Window
		want   []int
	}{
		{"unbounded", pagination.Window{}, []int{1, 2, 3, 4, 5}},
		{"first page", pagination.Window{Limit: 2}, []int{1, 2}},
		{"middle page", pagination.Window{Offset: 2, Limit: 2}, []int{3, 4}},
		{"partial last page", pagination.Window{Offset: 4, Limit: 2}, []int{5}},
		{"offset past end", pagination.Window{Offset: 10, Limit: 2}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.Apply(items, tt.window)
			if got == nil {
				t.Fatal("got nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestConfigFinalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var c pagination.Config
		if err := c.Finalize(nil); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if c.MaxLimit != 100 {
			t.Errorf("max_limit: got %d, want 100", c.MaxLimit)
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("TEST_PAGINATION_MAX_LIMIT", "25")
		var c pagination.Config
		if err := c.Finalize(&pagination.ConfigEnv{MaxLimit: "TEST_PAGINATION_MAX_LIMIT"}); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if c.MaxLimit != 25 {
			t.Errorf("max_limit: got %d, want 25", c.MaxLimit)
		}
	})

	t.Run("invalid env", func(t *testing.T) {
		t.Setenv("TEST_PAGINATION_MAX_LIMIT", "-3")
		var c pagination.Config
		if err := c.Finalize(&pagination.ConfigEnv{MaxLimit: "TEST_PAGINATION_MAX_LIMIT"}); err == nil {
			t.Error("expected error for negative max_limit")
		}
	})
}
