package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"not found", NotFoundf("campaign not found"), KindNotFound},
		{"invalid", Invalidf("budget must be numeric"), KindInvalidRequest},
		{"conflict", Conflictf("already applied"), KindConflict},
		{"wrapped", fmt.Errorf("handling request: %w", NotFoundf("gone")), KindNotFound},
		{"plain error", errors.New("boom"), KindInternal},
		{"nil cause preserved", Wrap(KindConflict, errors.New("dup key"), "duplicate application"), KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.expected {
				t.Errorf("KindOf() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{NotFoundf("x"), fiber.StatusNotFound},
		{Invalidf("x"), fiber.StatusBadRequest},
		{Conflictf("x"), fiber.StatusConflict},
		{Unauthorizedf("x"), fiber.StatusUnauthorized},
		{errors.New("x"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.expected {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.expected)
		}
	}
}

func TestMessageMasksInternal(t *testing.T) {
	if msg := Message(errors.New("pgx: connection refused")); msg != "internal error" {
		t.Errorf("Message() = %q, want masked internal error", msg)
	}
	if msg := Message(Conflictf("you have already applied to this campaign")); msg != "you have already applied to this campaign" {
		t.Errorf("Message() = %q, want original message", msg)
	}
}
