package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orderdesk/orders-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"client not found", domain.ErrClientNotFound, http.StatusNotFound, "client not found"},
		{"order not found", domain.ErrOrderNotFound, http.StatusNotFound, "order not found"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"duplicate email", domain.ErrDuplicateEmail, http.StatusBadRequest, "email already exists"},
		{"referenced entity", domain.ErrReferencedEntityNotFound, http.StatusBadRequest, "referenced client not found"},
		{"dependency conflict", domain.ErrDependencyConflict, http.StatusBadRequest, "cannot delete a client that has associated orders"},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest, "order total must be a positive amount within the supported range"},
		{"idempotency key reused", domain.ErrIdempotencyKeyReused, http.StatusBadRequest, "idempotency key already used for a different order"},
		{"echo error", echo.NewHTTPError(http.StatusUnauthorized, "invalid token"), http.StatusUnauthorized, "invalid token"},
		{"unexpected", fmt.Errorf("find client: %w", errors.New("socket closed")), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, resp.Error)
			}
		})
	}
}

func TestRuleLabel(t *testing.T) {
	if got := ruleLabel(domain.ErrInvalidAmount); got != "invalid_amount" {
		t.Errorf("unexpected label %q", got)
	}
	if got := ruleLabel(fmt.Errorf("wrapped: %w", domain.ErrDependencyConflict)); got != "dependency_conflict" {
		t.Errorf("unexpected label %q", got)
	}
}
