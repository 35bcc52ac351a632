package response

import (
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestDefaultMessageForStatus(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{fiber.StatusBadRequest, MessageBadRequest},
		{fiber.StatusUnauthorized, MessageUnauthorized},
		{fiber.StatusForbidden, MessageForbidden},
		{fiber.StatusNotFound, MessageNotFound},
		{fiber.StatusConflict, MessageConflict},
		{fiber.StatusInternalServerError, MessageInternalServerError},
		{fiber.StatusBadGateway, MessageInternalServerError},
		{fiber.StatusTeapot, MessageError},
	}

	for _, tc := range cases {
		if got := DefaultMessageForStatus(tc.status); got != tc.want {
			t.Fatalf("status %d: got %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	if got := normalizeStatus(0); got != fiber.StatusInternalServerError {
		t.Fatalf("out-of-range status: got %d", got)
	}
	if got := normalizeStatus(fiber.StatusNotFound); got != fiber.StatusNotFound {
		t.Fatalf("valid status changed: got %d", got)
	}
}

func TestNormalizeMessage(t *testing.T) {
	if got := normalizeMessage("custom", fiber.StatusBadRequest); got != "custom" {
		t.Fatalf("explicit message replaced: %q", got)
	}
	if got := normalizeMessage("", fiber.StatusNotFound); got != MessageNotFound {
		t.Fatalf("empty message not defaulted: %q", got)
	}
}
