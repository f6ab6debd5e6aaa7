package handlers

import (
	"vault-api/internal/requests"
	"vault-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
)

// SyncHandler handles sync-client HTTP requests
type SyncHandler struct {
	syncService *services.SyncService
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncService *services.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// Compare diffs the client's local file names against the remote corpus
func (h *SyncHandler) Compare(c *fiber.Ctx) error {
	var input requests.CompareRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	result, err := h.syncService.Compare(c.Context(), input.LocalFiles)
	if err != nil {
		response := httpx.InternalServerError("Failed to compare files", err)
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("Comparison completed successfully", result)
	return httpx.SendResponse(c, response)
}

// RemoteFiles returns the full remote listing for the sync client
func (h *SyncHandler) RemoteFiles(c *fiber.Ctx) error {
	files, err := h.syncService.RemoteFiles(c.Context())
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch remote files", err)
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("Remote files retrieved successfully", files)
	return httpx.SendResponse(c, response)
}
