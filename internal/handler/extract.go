package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/SsandrockK/youtube-transcript-extractor/internal/middleware"
	"github.com/SsandrockK/youtube-transcript-extractor/internal/model"
	"github.com/SsandrockK/youtube-transcript-extractor/internal/service"
	"github.com/SsandrockK/youtube-transcript-extractor/internal/youtube"
)

type ExtractHandler struct {
	svc              *service.ExtractService
	defaultLanguages []string
}

func NewExtractHandler(svc *service.ExtractService, defaultLanguages []string) *ExtractHandler {
	return &ExtractHandler{svc: svc, defaultLanguages: defaultLanguages}
}

// extractRequest is the POST /api/extract body.
type extractRequest struct {
	URL                string   `json:"url"`
	Languages          []string `json:"languages"`
	ChunkSeconds       float64  `json:"chunk_seconds"`
	PreserveFormatting bool     `json:"preserve_formatting"`
}

// Extract handles POST /api/extract
func (h *ExtractHandler) Extract(c fiber.Ctx) error {
	var req extractRequest
	if err := c.Bind().JSON(&req); err != nil {
		return extractError(c, "INVALID_INPUT", "Request body must be JSON with a url field")
	}

	input, errMsg := middleware.ValidateExtractInput(req.URL)
	if errMsg != "" {
		return extractError(c, "INVALID_INPUT", errMsg)
	}

	languages := req.Languages
	if len(languages) == 0 {
		languages = h.defaultLanguages
	}

	result, err := h.svc.Extract(c.Context(), input, service.Options{
		Languages:          languages,
		PreserveFormatting: req.PreserveFormatting,
	})
	if err != nil {
		return extractError(c, errorCode(err), err.Error())
	}

	Metrics.ExtractionsTotal.WithLabelValues("success").Inc()
	return c.JSON(model.NewExtractResponse(result, req.ChunkSeconds))
}

// extractError counts the failure and maps it to a 400 response. All
// extraction failures are client-visible terminal errors; upstream
// transient failures are surfaced for the caller to retry.
func extractError(c fiber.Ctx, code, message string) error {
	Metrics.ExtractionsTotal.WithLabelValues(code).Inc()
	return middleware.ErrorResponse(c, fiber.StatusBadRequest, code, message)
}

// errorCode maps the extraction error taxonomy to API error codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, youtube.ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, youtube.ErrTranscriptsDisabled):
		return "TRANSCRIPTS_DISABLED"
	case errors.Is(err, youtube.ErrNoTranscriptFound):
		return "NO_TRANSCRIPT_FOUND"
	case errors.Is(err, youtube.ErrVideoUnavailable):
		return "VIDEO_UNAVAILABLE"
	default:
		return "UPSTREAM_REQUEST_FAILED"
	}
}
