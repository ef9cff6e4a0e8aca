package estimate

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estimateai/internal/domain"
	"estimateai/internal/pkg/costing"
	"estimateai/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/estimates", h.List)
	rg.POST("/estimates", h.Create)
	rg.GET("/estimates/:id", h.Get)
	rg.PUT("/estimates/:id", h.Update)
	rg.DELETE("/estimates/:id", h.Delete)
	rg.PATCH("/estimates/:id/status", h.UpdateStatus)
	rg.GET("/estimates/:id/totals", h.Totals)

	rg.GET("/estimates/:id/materials", h.ListMaterials)
	rg.POST("/estimates/:id/materials", h.AddMaterial)
	rg.PUT("/estimates/:id/materials/:itemID", h.UpdateMaterial)
	rg.DELETE("/estimates/:id/materials/:itemID", h.RemoveMaterial)

	rg.GET("/estimates/:id/labor", h.ListLabor)
	rg.POST("/estimates/:id/labor", h.AddLabor)
	rg.PUT("/estimates/:id/labor/:itemID", h.UpdateLabor)
	rg.DELETE("/estimates/:id/labor/:itemID", h.RemoveLabor)

	rg.POST("/estimates/:id/export-pdf", h.ExportPDF)
	rg.POST("/estimates/:id/send-email", h.SendEmail)

	// draft buffer for the multistep form; lives outside /estimates/:id so
	// the creation flow (no id yet) can use it too
	rg.GET("/drafts/estimate", h.DraftBaseline)
	rg.PUT("/drafts/estimate", h.MergeDraft)
	rg.DELETE("/drafts/estimate", h.CancelDraft)
}

func (h *Handler) List(c *gin.Context) {
	status := c.Query("status")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	estimates, err := h.service.List(c.Request.Context(), userID(c), status, limit, offset)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"estimates": estimates})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	e, err := h.service.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"estimate": e})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Create(c.Request.Context(), userID(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"estimate": e})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Update(c.Request.Context(), userID(c), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"estimate": e})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), userID(c), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.UpdateStatus(c.Request.Context(), userID(c), id, req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"estimate": e})
}

func (h *Handler) Totals(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	totals, err := h.service.Totals(c.Request.Context(), userID(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"totals": totals})
}

func (h *Handler) ListMaterials(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.service.ListMaterials(c.Request.Context(), userID(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"materials": items})
}

func (h *Handler) AddMaterial(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req MaterialItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.AddMaterial(c.Request.Context(), userID(c), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"material": item})
}

func (h *Handler) UpdateMaterial(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	var req MaterialItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.UpdateMaterial(c.Request.Context(), userID(c), id, itemID, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"material": item})
}

func (h *Handler) RemoveMaterial(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	if err := h.service.RemoveMaterial(c.Request.Context(), userID(c), id, itemID); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListLabor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.service.ListLabor(c.Request.Context(), userID(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"labor": items})
}

func (h *Handler) AddLabor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req LaborItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.AddLabor(c.Request.Context(), userID(c), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"labor": item})
}

func (h *Handler) UpdateLabor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	var req LaborItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.UpdateLabor(c.Request.Context(), userID(c), id, itemID, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"labor": item})
}

func (h *Handler) RemoveLabor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	if err := h.service.RemoveLabor(c.Request.Context(), userID(c), id, itemID); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ExportPDF(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	pdf, err := h.service.ExportPDF(c.Request.Context(), userID(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="estimate.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) SendEmail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SendEmail(c.Request.Context(), userID(c), id, req.Email); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sent": true})
}

func (h *Handler) DraftBaseline(c *gin.Context) {
	baseline, err := h.service.DraftBaseline(c.Request.Context(), userID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"draft": baseline})
}

func (h *Handler) MergeDraft(c *gin.Context) {
	var req DraftMergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	fields, err := h.service.MergeDraft(req.Target, req.Fields)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"target": req.Target, "fields": fields})
}

func (h *Handler) CancelDraft(c *gin.Context) {
	h.service.CancelDraft()
	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, costing.ErrMarginOutOfRange),
		errors.Is(err, costing.ErrNegativeLineInput):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Estimate not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this estimate")
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Status change is not allowed from the current state")
	case errors.Is(err, ErrStaleDraft):
		response.Error(c, http.StatusConflict, "STALE_DRAFT", "Draft is scoped to a different estimate")
	case errors.Is(err, ErrMailerUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "MAILER_UNAVAILABLE", "Email delivery is not configured")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}

func userID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}

func pathID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+param)
		return 0, false
	}
	return id, true
}
