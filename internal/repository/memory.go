package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"vault-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryFileRepository is an in-memory FileRepository holding records in
// insertion order. It backs tests and local development without a database
// and honors the same contract as the GORM implementation, including
// gorm.ErrRecordNotFound on misses.
type memoryFileRepository struct {
	mu    sync.RWMutex
	files []*models.File
}

// NewMemoryFileRepository creates an in-memory file repository
func NewMemoryFileRepository() FileRepository {
	return &memoryFileRepository{}
}

func (r *memoryFileRepository) Create(ctx context.Context, file *models.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	file.ID = uuid.New()
	file.CreatedAt = now
	file.UpdatedAt = now

	stored := *file
	r.files = append(r.files, &stored)
	return nil
}

func (r *memoryFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.files {
		if f.ID == id {
			found := *f
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryFileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var files []models.File
	for _, f := range r.files {
		if f.OwnerID == ownerID {
			files = append(files, *f)
		}
	}
	return files, nil
}

func (r *memoryFileRepository) FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*models.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.files {
		if f.OwnerID == ownerID && f.Name == name {
			found := *f
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryFileRepository) FindByTypes(ctx context.Context, types []string) ([]models.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	typeSet := make(map[string]struct{}, len(types))
	for _, t := range types {
		typeSet[t] = struct{}{}
	}

	var files []models.File
	for _, f := range r.files {
		if _, ok := typeSet[f.Type]; ok {
			files = append(files, *f)
		}
	}
	return files, nil
}

func (r *memoryFileRepository) FindAll(ctx context.Context) ([]models.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	files := make([]models.File, 0, len(r.files))
	for _, f := range r.files {
		files = append(files, *f)
	}
	return files, nil
}

func (r *memoryFileRepository) FindAllOrderedByModified(ctx context.Context, ascending bool) ([]models.File, error) {
	files, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// Stable sort keeps insertion order for records with equal timestamps
	sort.SliceStable(files, func(i, j int) bool {
		if ascending {
			return files[i].UpdatedAt.Before(files[j].UpdatedAt)
		}
		return files[i].UpdatedAt.After(files[j].UpdatedAt)
	})
	return files, nil
}

func (r *memoryFileRepository) Update(ctx context.Context, file *models.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.files {
		if f.ID == file.ID {
			file.CreatedAt = f.CreatedAt
			file.UpdatedAt = time.Now()
			stored := *file
			r.files[i] = &stored
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.files {
		if f.ID == id {
			r.files = append(r.files[:i], r.files[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
