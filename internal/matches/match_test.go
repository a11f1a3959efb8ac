package matches_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/reclaim-app/reclaim/internal/matches"
)

func TestParseStatus(t *testing.T) {
	valid := []string{"suggested", "confirmed", "dismissed"}
	for _, s := range valid {
		got, err := matches.ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %s, want %s", s, got, s)
		}
	}

	invalid := []string{"pending", "SUGGESTED", "", "resolved"}
	for _, s := range invalid {
		if _, err := matches.ParseStatus(s); !errors.Is(err, matches.ErrInvalidStatus) {
			t.Errorf("ParseStatus(%q) error = %v, want ErrInvalidStatus", s, err)
		}
	}
}

func TestStatusUnmarshalJSON(t *testing.T) {
	t.Run("accepts known status", func(t *testing.T) {
		var s matches.Status
		if err := json.Unmarshal([]byte(`"confirmed"`), &s); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if s != matches.StatusConfirmed {
			t.Errorf("status = %s, want confirmed", s)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		var s matches.Status
		err := json.Unmarshal([]byte(`"archived"`), &s)
		if !errors.Is(err, matches.ErrInvalidStatus) {
			t.Errorf("error = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("rejects non-string value", func(t *testing.T) {
		var s matches.Status
		if err := json.Unmarshal([]byte(`17`), &s); err == nil {
			t.Error("expected error for numeric status")
		}
	})
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"match not found", matches.ErrNotFound, http.StatusNotFound},
		{"item not found", matches.ErrItemNotFound, http.StatusNotFound},
		{"item not eligible", matches.ErrItemNotEligible, http.StatusNotFound},
		{"forbidden", matches.ErrForbidden, http.StatusForbidden},
		{"duplicate", matches.ErrDuplicate, http.StatusConflict},
		{"invalid transition", matches.ErrInvalidTransition, http.StatusConflict},
		{"too large", matches.ErrRequestTooLarge, http.StatusRequestEntityTooLarge},
		{"invalid status", matches.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid score", matches.ErrInvalidScore, http.StatusBadRequest},
		{"invalid id", matches.ErrInvalidID, http.StatusBadRequest},
		{"no actor", matches.ErrNoActor, http.StatusBadRequest},
		{"wrapped", fmt.Errorf("confirming match: %w", matches.ErrForbidden), http.StatusForbidden},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matches.MapHTTPStatus(tt.err); got != tt.status {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.status)
			}
		})
	}
}
