package suggestion

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"estimateai/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/process-text", h.ProcessText)
	rg.POST("/ai/process-voice", h.ProcessVoice)
}

func (h *Handler) ProcessText(c *gin.Context) {
	var req ProcessTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	h.process(c, req.Text)
}

// ProcessVoice accepts the transcript the browser's speech recognition
// produced and feeds it through the same pipeline as typed text.
func (h *Handler) ProcessVoice(c *gin.Context) {
	var req ProcessVoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	h.process(c, req.Transcript)
}

func (h *Handler) process(c *gin.Context, text string) {
	result, err := h.service.ProcessText(c.Request.Context(), text)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Project description must not be empty")
		case errors.Is(err, ErrMalformedSuggestion):
			response.Error(c, http.StatusBadGateway, "MALFORMED_SUGGESTION", "AI service returned an unreadable suggestion")
		case errors.Is(err, ErrEmptySuggestion):
			response.Error(c, http.StatusUnprocessableEntity, "EMPTY_SUGGESTION", "AI service returned no materials or labor")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process description")
		}
		return
	}
	response.Success(c, http.StatusOK, result)
}
