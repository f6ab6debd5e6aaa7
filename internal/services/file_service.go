package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"vault-api/internal/config"
	"vault-api/internal/models"
	"vault-api/internal/repository"
	"vault-api/internal/storage"
	"vault-api/internal/utils"

	"github.com/google/uuid"
	pkgErrors "github.com/kerimovok/go-pkg-utils/errors"
	"gorm.io/gorm"
)

// FileService orchestrates the file lifecycle against the metadata
// repository and the content store. Mutations on the same record are
// serialized by per-key locks: uploads lock the owner (the duplicate-name
// check must not race a concurrent upload of the same name), every other
// operation locks the file id.
type FileService struct {
	files      repository.FileRepository
	content    storage.ContentStore
	validation config.ValidationConfig

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileService creates a new file service instance
func NewFileService(files repository.FileRepository, content storage.ContentStore, validation config.ValidationConfig) *FileService {
	return &FileService{
		files:      files,
		content:    content,
		validation: validation,
		locks:      make(map[string]*sync.Mutex),
	}
}

// lock acquires the named mutex and returns its release function
func (s *FileService) lock(key string) func() {
	s.mu.Lock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func ownerLockKey(ownerID uuid.UUID) string {
	return "owner:" + ownerID.String()
}

func fileLockKey(fileID uuid.UUID) string {
	return "file:" + fileID.String()
}

// ValidateUpload checks an incoming file against the configured limits
func (s *FileService) ValidateUpload(filename string, size int64) error {
	if !utils.IsSafeFilename(filename) {
		return pkgErrors.BadRequestError("INVALID_FILENAME", fmt.Sprintf("Invalid file name: %q", filename))
	}
	if s.validation.MaxFileSizeBytes > 0 && size > s.validation.MaxFileSizeBytes {
		return pkgErrors.BadRequestError("FILE_TOO_LARGE", fmt.Sprintf("File size exceeds maximum allowed size of %d bytes", s.validation.MaxFileSizeBytes))
	}
	return nil
}

// Upload stores the content and creates the metadata record. The uploader
// becomes both owner and first editor. The content is written before the
// record is created so a failed write never leaves orphaned metadata.
func (s *FileService) Upload(ctx context.Context, data []byte, originalName string, size int64, ownerID uuid.UUID, ownerName string) (*models.File, error) {
	unlock := s.lock(ownerLockKey(ownerID))
	defer unlock()

	_, err := s.files.FindByOwnerAndName(ctx, ownerID, originalName)
	if err == nil {
		return nil, ErrDuplicateName
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check for existing file: %w", err)
	}

	key := utils.StorageKey(ownerID.String(), originalName)
	if err := s.content.Put(ctx, key, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	record := &models.File{
		Name:       originalName,
		Type:       utils.GetFileExtension(originalName),
		Size:       size,
		StorageKey: key,
		OwnerID:    ownerID,
		OwnerName:  ownerName,
		EditorID:   ownerID,
		EditorName: ownerName,
	}

	if err := s.files.Create(ctx, record); err != nil {
		// Roll the bytes back so the content store does not accumulate
		// blobs no record points at
		_ = s.content.Delete(ctx, key)
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}

	return record, nil
}

// Download returns the stored bytes for a file
func (s *FileService) Download(ctx context.Context, fileID uuid.UUID) ([]byte, error) {
	unlock := s.lock(fileLockKey(fileID))
	defer unlock()

	record, err := s.findRecord(ctx, fileID)
	if err != nil {
		return nil, err
	}

	data, err := s.content.Get(ctx, record.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}
	return data, nil
}

// Update replaces a file's content and name in place. The storage key is
// recomputed from the record's owner, not the editor, so the key namespace
// stays with the original uploader. Old content is deleted before the new
// write: when the name is unchanged both keys are equal, and writing first
// would destroy the fresh content. The record is only saved after the new
// write succeeds, so metadata never points at missing content.
func (s *FileService) Update(ctx context.Context, fileID uuid.UUID, data []byte, newName string, size int64, editorID uuid.UUID, editorName string) (*models.File, error) {
	unlock := s.lock(fileLockKey(fileID))
	defer unlock()

	record, err := s.findRecord(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if err := s.content.Delete(ctx, record.StorageKey); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	newKey := utils.StorageKey(record.OwnerID.String(), newName)
	if err := s.content.Put(ctx, newKey, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	record.Name = newName
	record.Type = utils.GetFileExtension(newName)
	record.Size = size
	record.StorageKey = newKey
	record.EditorID = editorID
	record.EditorName = editorName

	if err := s.files.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update file record: %w", err)
	}

	return record, nil
}

// Delete removes a file's metadata and content. Only the owner may delete.
// The content removal is best-effort; the operation succeeds once the
// metadata record is gone.
func (s *FileService) Delete(ctx context.Context, fileID uuid.UUID, requesterID uuid.UUID) error {
	unlock := s.lock(fileLockKey(fileID))
	defer unlock()

	record, err := s.findRecord(ctx, fileID)
	if err != nil {
		return err
	}

	if record.OwnerID != requesterID {
		return ErrAccessDenied
	}

	_ = s.content.Delete(ctx, record.StorageKey)

	if err := s.files.Delete(ctx, fileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete file record: %w", err)
	}
	return nil
}

// GetMetadata returns the metadata record for a file
func (s *FileService) GetMetadata(ctx context.Context, fileID uuid.UUID) (*models.File, error) {
	return s.findRecord(ctx, fileID)
}

// ListAll returns every file record in the vault
func (s *FileService) ListAll(ctx context.Context) ([]models.File, error) {
	return s.files.FindAll(ctx)
}

func (s *FileService) findRecord(ctx context.Context, fileID uuid.UUID) (*models.File, error) {
	record, err := s.files.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch file record: %w", err)
	}
	return record, nil
}
