package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"

	"vault-api/internal/middleware"
	"vault-api/internal/models"
	"vault-api/internal/requests"
	"vault-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-utils/httpx"
)

// FileHandler handles file-related HTTP requests
type FileHandler struct {
	fileService  *services.FileService
	queryService *services.QueryService
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService *services.FileService, queryService *services.QueryService) *FileHandler {
	return &FileHandler{
		fileService:  fileService,
		queryService: queryService,
	}
}

// UploadFile handles file upload requests
func (h *FileHandler) UploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		response := httpx.BadRequest("No file provided", err)
		return httpx.SendResponse(c, response)
	}

	if err := h.fileService.ValidateUpload(file.Filename, file.Size); err != nil {
		response := httpx.BadRequest("File validation failed", err)
		return httpx.SendResponse(c, response)
	}

	data, err := readMultipartFile(file)
	if err != nil {
		response := httpx.InternalServerError("Failed to read uploaded file", err)
		return httpx.SendResponse(c, response)
	}

	principal := middleware.Principal(c)
	record, err := h.fileService.Upload(c.Context(), data, file.Filename, file.Size, principal.UserID, principal.Username)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateName):
			response := httpx.Conflict("File with this name already exists", err)
			return httpx.SendResponse(c, response)
		case errors.Is(err, services.ErrStorageWrite):
			response := httpx.InternalServerError("Failed to save file content", err)
			return httpx.SendResponse(c, response)
		default:
			response := httpx.InternalServerError("Failed to process file upload", err)
			return httpx.SendResponse(c, response)
		}
	}

	response := httpx.Created("File uploaded successfully", record)
	return httpx.SendResponse(c, response)
}

// GetFile retrieves file metadata
func (h *FileHandler) GetFile(c *fiber.Ctx) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	record, err := h.fileService.GetMetadata(c.Context(), fileID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response := httpx.NotFound("File not found")
			return httpx.SendResponse(c, response)
		}
		response := httpx.InternalServerError("Failed to fetch file", err)
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("File retrieved successfully", record)
	return httpx.SendResponse(c, response)
}

// DownloadFile handles file download requests
func (h *FileHandler) DownloadFile(c *fiber.Ctx) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	record, err := h.fileService.GetMetadata(c.Context(), fileID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response := httpx.NotFound("File not found")
			return httpx.SendResponse(c, response)
		}
		response := httpx.InternalServerError("Failed to fetch file", err)
		return httpx.SendResponse(c, response)
	}

	data, err := h.fileService.Download(c.Context(), fileID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			response := httpx.NotFound("File not found")
			return httpx.SendResponse(c, response)
		case errors.Is(err, services.ErrStorageRead):
			response := httpx.InternalServerError("Failed to read file content", err)
			return httpx.SendResponse(c, response)
		default:
			response := httpx.InternalServerError("Failed to download file", err)
			return httpx.SendResponse(c, response)
		}
	}

	c.Set(fiber.HeaderContentType, contentTypeForExtension(record.Type))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", record.Name))
	return c.Send(data)
}

// UpdateFile replaces a file's content and name
func (h *FileHandler) UpdateFile(c *fiber.Ctx) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	file, err := c.FormFile("file")
	if err != nil {
		response := httpx.BadRequest("No file provided", err)
		return httpx.SendResponse(c, response)
	}

	if err := h.fileService.ValidateUpload(file.Filename, file.Size); err != nil {
		response := httpx.BadRequest("File validation failed", err)
		return httpx.SendResponse(c, response)
	}

	data, err := readMultipartFile(file)
	if err != nil {
		response := httpx.InternalServerError("Failed to read uploaded file", err)
		return httpx.SendResponse(c, response)
	}

	principal := middleware.Principal(c)
	record, err := h.fileService.Update(c.Context(), fileID, data, file.Filename, file.Size, principal.UserID, principal.Username)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			response := httpx.NotFound("File not found")
			return httpx.SendResponse(c, response)
		case errors.Is(err, services.ErrStorageWrite):
			response := httpx.InternalServerError("Failed to save file content", err)
			return httpx.SendResponse(c, response)
		default:
			response := httpx.InternalServerError("Failed to update file", err)
			return httpx.SendResponse(c, response)
		}
	}

	response := httpx.OK("File updated successfully", record)
	return httpx.SendResponse(c, response)
}

// DeleteFile deletes a file. Only the owner may delete; the check lives in
// the service, not here.
func (h *FileHandler) DeleteFile(c *fiber.Ctx) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	principal := middleware.Principal(c)
	if err := h.fileService.Delete(c.Context(), fileID, principal.UserID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			response := httpx.NotFound("File not found")
			return httpx.SendResponse(c, response)
		case errors.Is(err, services.ErrAccessDenied):
			response := httpx.Forbidden("Access denied")
			return httpx.SendResponse(c, response)
		default:
			response := httpx.InternalServerError("Failed to delete file", err)
			return httpx.SendResponse(c, response)
		}
	}

	response := httpx.OK("File deleted successfully", nil)
	return httpx.SendResponse(c, response)
}

// ListFiles lists files with optional sorting and type filtering
func (h *FileHandler) ListFiles(c *fiber.Ctx) error {
	var input requests.ListFilesRequest
	if err := c.QueryParser(&input); err != nil {
		response := httpx.BadRequest("Invalid query parameters", err)
		return httpx.SendResponse(c, response)
	}

	types := input.TypeFilter()

	var (
		files []models.File
		err   error
	)
	if input.Ascending != nil {
		files, err = h.queryService.SortAndFilter(c.Context(), *input.Ascending, types)
	} else {
		files, err = h.queryService.ListAll(c.Context(), types)
	}
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch files", err)
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("Files retrieved successfully", files)
	return httpx.SendResponse(c, response)
}

func readMultipartFile(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}

func contentTypeForExtension(ext string) string {
	if ext != "" {
		if contentType := mime.TypeByExtension("." + ext); contentType != "" {
			return contentType
		}
	}
	return "application/octet-stream"
}
