package taxonomy_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/internal/taxonomy"
)

type mockSystem struct {
	categoriesFn func(ctx context.Context) ([]taxonomy.Category, error)
	locationsFn  func(ctx context.Context) ([]taxonomy.Location, error)
}

func (m *mockSystem) Handler() *taxonomy.Handler {
	return taxonomy.NewHandler(m, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (m *mockSystem) Categories(ctx context.Context) ([]taxonomy.Category, error) {
	return m.categoriesFn(ctx)
}

func (m *mockSystem) Locations(ctx context.Context) ([]taxonomy.Location, error) {
	return m.locationsFn(ctx)
}

func (m *mockSystem) FindCategory(_ context.Context, _ uuid.UUID) (*taxonomy.Category, error) {
	return nil, taxonomy.ErrCategoryNotFound
}

func (m *mockSystem) FindLocation(_ context.Context, _ uuid.UUID) (*taxonomy.Location, error) {
	return nil, taxonomy.ErrLocationNotFound
}

func setupMux(h *taxonomy.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func TestHandlerCategories(t *testing.T) {
	t.Run("returns all categories", func(t *testing.T) {
		sys := &mockSystem{
			categoriesFn: func(_ context.Context) ([]taxonomy.Category, error) {
				return []taxonomy.Category{
					{ID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440010"), Name: "Electronics", Description: "Phones, laptops, chargers"},
					{ID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440011"), Name: "Keys", Description: "Keys and key fobs"},
				}, nil
			},
		}
		mux := setupMux(sys.Handler())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/categories", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var got []taxonomy.Category
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].Name != "Electronics" {
			t.Errorf("first category = %q, want Electronics", got[0].Name)
		}
	})

	t.Run("lookup failure maps to 500", func(t *testing.T) {
		sys := &mockSystem{
			categoriesFn: func(_ context.Context) ([]taxonomy.Category, error) {
				return nil, errors.New("connection refused")
			},
		}
		mux := setupMux(sys.Handler())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/categories", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
	})
}

func TestHandlerLocations(t *testing.T) {
	sys := &mockSystem{
		locationsFn: func(_ context.Context) ([]taxonomy.Location, error) {
			return []taxonomy.Location{
				{ID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440020"), Name: "Main Library"},
			}, nil
		},
	}
	mux := setupMux(sys.Handler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/locations", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []taxonomy.Location
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Main Library" {
		t.Errorf("locations = %+v, want one entry Main Library", got)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{taxonomy.ErrCategoryNotFound, http.StatusNotFound},
		{taxonomy.ErrLocationNotFound, http.StatusNotFound},
		{taxonomy.ErrDuplicate, http.StatusConflict},
		{fmt.Errorf("resolving report: %w", taxonomy.ErrCategoryNotFound), http.StatusNotFound},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := taxonomy.MapHTTPStatus(tt.err); got != tt.status {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.status)
		}
	}
}
