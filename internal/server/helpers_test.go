package server

import (
	"errors"
	"fmt"
	"testing"

	"microblog/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", models.NewNotFoundError("User", 1), fiber.StatusNotFound},
		{"conflict", models.NewConflictError("duplicate", nil), fiber.StatusConflict},
		{"invalid reference", models.NewInvalidReferenceError("Author not found", nil), fiber.StatusBadRequest},
		{"validation", models.NewValidationError("bad input"), fiber.StatusBadRequest},
		{"internal", models.NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{"untagged error", errors.New("boom"), fiber.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("list users: %w", models.NewNotFoundError("User", 2)), fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapServiceError(tt.err))
		})
	}
}
