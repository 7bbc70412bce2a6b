package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// MaxInputLen caps the submitted URL/ID. Watch URLs with tracking params
// stay well under this; anything longer is junk.
const MaxInputLen = 512

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateExtractInput checks the submitted video URL or ID before any
// network round trip. Returns the trimmed input, or an error message.
// Shape validation (URL patterns, 11-character ID rule) belongs to the
// resolver; this only rejects obvious garbage at the edge.
func ValidateExtractInput(input string) (string, string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", "Please provide a YouTube URL"
	}
	if len(input) > MaxInputLen {
		return "", "URL must be at most 512 characters"
	}
	if strings.ContainsAny(input, " \t\n\r") {
		return "", "URL must not contain whitespace"
	}
	return input, ""
}
