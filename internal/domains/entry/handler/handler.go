package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"timeline-backend/internal/domains/entry/model"
	"timeline-backend/internal/domains/entry/service"
	"timeline-backend/internal/shared/response"
)

// =====================================================
// ENTRY HANDLER
// =====================================================

type EntryHandler struct {
	entryService service.ServiceInterface
}

func NewEntryHandler(entryService service.ServiceInterface) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// ListEntries returns every entry, newest date first
// GET /api/entries
func (h *EntryHandler) ListEntries(c *gin.Context) {
	entries, err := h.entryService.ListEntries(c.Request.Context())
	if err != nil {
		respondEntryError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entries)
}

// CreateEntry creates new entry
// POST /api/entries
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	// Step 1: Bind request body
	var req model.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeValidation, "Invalid request body")
		return
	}

	// Step 2: Call service (validation happens there)
	entry, err := h.entryService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		respondEntryError(c, err)
		return
	}

	// Step 3: Return success
	response.Success(c, http.StatusCreated, entry)
}

// DeleteEntry deletes entry by ID
// DELETE /api/entries/:id
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	if err := h.entryService.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		respondEntryError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.DeleteEntryResponse{
		Message: "Entry deleted successfully",
	})
}

// =====================================================
// HELPER FUNCTIONS
// =====================================================

func respondEntryError(c *gin.Context, err error) {
	statusCode, errCode, message := mapEntryError(err)
	response.ErrorResponse(c, statusCode, errCode, message)
}

// mapEntryError maps entry error to HTTP status code
func mapEntryError(err error) (int, string, string) {
	var entryErr *model.EntryError
	if errors.As(err, &entryErr) {
		switch entryErr.Code {
		case model.ErrCodeValidation:
			return http.StatusBadRequest, entryErr.Code, entryErr.Message
		case model.ErrCodeNotFound:
			return http.StatusNotFound, entryErr.Code, entryErr.Message
		default:
			return http.StatusInternalServerError, entryErr.Code, entryErr.Message
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
}
