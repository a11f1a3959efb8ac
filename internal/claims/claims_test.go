package claims_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/internal/claims"
)

type mockSystem struct {
	fileFn    func(ctx context.Context, cmd claims.FileCommand) (*claims.Claim, error)
	findFn    func(ctx context.Context, id uuid.UUID) (*claims.Claim, error)
	listFn    func(ctx context.Context, foundItemID uuid.UUID) ([]claims.Claim, error)
	approveFn func(ctx context.Context, id uuid.UUID) (*claims.Claim, error)
	rejectFn  func(ctx context.Context, id uuid.UUID) (*claims.Claim, error)
}

func (m *mockSystem) Handler(maxBodySize int64) *claims.Handler {
	return claims.NewHandler(m, slog.New(slog.NewTextHandler(io.Discard, nil)), maxBodySize)
}

func (m *mockSystem) File(ctx context.Context, cmd claims.FileCommand) (*claims.Claim, error) {
	return m.fileFn(ctx, cmd)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*claims.Claim, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) ListByFoundItem(ctx context.Context, foundItemID uuid.UUID) ([]claims.Claim, error) {
	return m.listFn(ctx, foundItemID)
}

func (m *mockSystem) Approve(ctx context.Context, id uuid.UUID) (*claims.Claim, error) {
	return m.approveFn(ctx, id)
}

func (m *mockSystem) Reject(ctx context.Context, id uuid.UUID) (*claims.Claim, error) {
	return m.rejectFn(ctx, id)
}

func setupMux(h *claims.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func sampleClaim() claims.Claim {
	return claims.Claim{
		ID:          uuid.MustParse("660e8400-e29b-41d4-a716-446655440000"),
		FoundItemID: uuid.MustParse("660e8400-e29b-41d4-a716-446655440001"),
		ClaimantID:  uuid.MustParse("660e8400-e29b-41d4-a716-446655440002"),
		Note:        "Has my initials engraved on the back",
		Status:      claims.StatusPending,
		CreatedAt:   time.Date(2026, 3, 12, 9, 30, 0, 0, time.UTC),
	}
}

func TestHandlerFile(t *testing.T) {
	claim := sampleClaim()

	body := func() *bytes.Buffer {
		buf := &bytes.Buffer{}
		json.NewEncoder(buf).Encode(claims.FileCommand{
			FoundItemID: claim.FoundItemID,
			ClaimantID:  claim.ClaimantID,
			Note:        claim.Note,
		})
		return buf
	}

	t.Run("files claim and returns 201", func(t *testing.T) {
		var captured claims.FileCommand
		sys := &mockSystem{
			fileFn: func(_ context.Context, cmd claims.FileCommand) (*claims.Claim, error) {
				captured = cmd
				return &claim, nil
			},
		}
		mux := setupMux(sys.Handler(1 << 20))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/claims", body())
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		if captured.FoundItemID != claim.FoundItemID {
			t.Errorf("found item = %v, want %v", captured.FoundItemID, claim.FoundItemID)
		}
		if captured.Note != claim.Note {
			t.Errorf("note = %q, want %q", captured.Note, claim.Note)
		}
	})

	t.Run("unclaimable item maps to 409", func(t *testing.T) {
		sys := &mockSystem{
			fileFn: func(_ context.Context, _ claims.FileCommand) (*claims.Claim, error) {
				return nil, claims.ErrNotClaimable
			},
		}
		mux := setupMux(sys.Handler(1 << 20))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/claims", body())
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", rec.Code)
		}
	})

	t.Run("missing item maps to 404", func(t *testing.T) {
		sys := &mockSystem{
			fileFn: func(_ context.Context, _ claims.FileCommand) (*claims.Claim, error) {
				return nil, claims.ErrItemNotFound
			},
		}
		mux := setupMux(sys.Handler(1 << 20))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/claims", body())
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		sys := &mockSystem{}
		mux := setupMux(sys.Handler(1 << 20))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/claims", strings.NewReader("{not json"))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("oversized body maps to 413", func(t *testing.T) {
		sys := &mockSystem{}
		mux := setupMux(sys.Handler(16))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/claims", body())
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("status = %d, want 413", rec.Code)
		}
	})
}

func TestHandlerListByFoundItem(t *testing.T) {
	claim := sampleClaim()

	t.Run("returns claims for found item", func(t *testing.T) {
		sys := &mockSystem{
			listFn: func(_ context.Context, foundItemID uuid.UUID) ([]claims.Claim, error) {
				if foundItemID != claim.FoundItemID {
					t.Errorf("found item = %v, want %v", foundItemID, claim.FoundItemID)
				}
				return []claims.Claim{claim}, nil
			},
		}
		mux := setupMux(sys.Handler(1 << 20))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/claims/found/"+claim.FoundItemID.String(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var got []claims.Claim
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != 1 || got[0].ID != claim.ID {
			t.Errorf("claims = %+v, want one claim %v", got, claim.ID)
		}
	})

	t.Run("item without claims returns empty list", func(t *testing.T) {
		sys := &mockSystem{
			listFn: func(_ context.Context, _ uuid.UUID) ([]claims.Claim, error) {
				return []claims.Claim{}, nil
			},
		}
		mux := setupMux(sys.Handler(1 << 20))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/claims/found/"+uuid.NewString(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
			t.Errorf("body = %s, want []", body)
		}
	})

	t.Run("malformed id maps to 400", func(t *testing.T) {
		sys := &mockSystem{}
		mux := setupMux(sys.Handler(1 << 20))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/claims/found/not-a-uuid", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestHandlerReview(t *testing.T) {
	claim := sampleClaim()

	t.Run("approve returns reviewed claim", func(t *testing.T) {
		actionDate := time.Date(2026, 3, 13, 10, 0, 0, 0, time.UTC)
		sys := &mockSystem{
			approveFn: func(_ context.Context, id uuid.UUID) (*claims.Claim, error) {
				approved := claim
				approved.ID = id
				approved.Status = claims.StatusApproved
				approved.ActionDate = &actionDate
				return &approved, nil
			},
		}
		mux := setupMux(sys.Handler(1 << 20))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/claims/"+claim.ID.String()+"/approve", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var got claims.Claim
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Status != claims.StatusApproved {
			t.Errorf("status = %s, want approved", got.Status)
		}
		if got.ActionDate == nil {
			t.Error("action date not set on reviewed claim")
		}
	})

	t.Run("already reviewed maps to 409", func(t *testing.T) {
		sys := &mockSystem{
			rejectFn: func(_ context.Context, _ uuid.UUID) (*claims.Claim, error) {
				return nil, claims.ErrInvalidTransition
			},
		}
		mux := setupMux(sys.Handler(1 << 20))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/claims/"+claim.ID.String()+"/reject", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", rec.Code)
		}
	})
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", claims.ErrNotFound, http.StatusNotFound},
		{"item not found", claims.ErrItemNotFound, http.StatusNotFound},
		{"duplicate", claims.ErrDuplicate, http.StatusConflict},
		{"not claimable", claims.ErrNotClaimable, http.StatusConflict},
		{"invalid transition", claims.ErrInvalidTransition, http.StatusConflict},
		{"invalid claim", claims.ErrInvalidClaim, http.StatusBadRequest},
		{"too large", claims.ErrRequestTooLarge, http.StatusRequestEntityTooLarge},
		{"wrapped", fmt.Errorf("filing claim: %w", claims.ErrNotClaimable), http.StatusConflict},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := claims.MapHTTPStatus(tt.err); got != tt.status {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.status)
			}
		})
	}
}
