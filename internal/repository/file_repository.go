package repository

import (
	"context"

	"vault-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileRepository is the authoritative store of file records. Create and
// Update own the timestamp fields; caller-supplied values are overridden.
// Lookups that miss return gorm.ErrRecordNotFound.
type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.File, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.File, error)
	FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*models.File, error)
	FindByTypes(ctx context.Context, types []string) ([]models.File, error)
	FindAll(ctx context.Context) ([]models.File, error)
	FindAllOrderedByModified(ctx context.Context, ascending bool) ([]models.File, error)
	Update(ctx context.Context, file *models.File) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// gormFileRepository implements FileRepository on the metadata database
type gormFileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a database-backed file repository
func NewFileRepository(db *gorm.DB) FileRepository {
	return &gormFileRepository{db: db}
}

func (r *gormFileRepository) Create(ctx context.Context, file *models.File) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *gormFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	var file models.File
	if err := r.db.WithContext(ctx).First(&file, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *gormFileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.File, error) {
	var files []models.File
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *gormFileRepository) FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*models.File, error) {
	var file models.File
	if err := r.db.WithContext(ctx).Where("owner_id = ? AND name = ?", ownerID, name).First(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *gormFileRepository) FindByTypes(ctx context.Context, types []string) ([]models.File, error) {
	var files []models.File
	if err := r.db.WithContext(ctx).Where("type IN ?", types).Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *gormFileRepository) FindAll(ctx context.Context) ([]models.File, error) {
	var files []models.File
	if err := r.db.WithContext(ctx).Order("created_at").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *gormFileRepository) FindAllOrderedByModified(ctx context.Context, ascending bool) ([]models.File, error) {
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	var files []models.File
	// created_at and id make the ordering deterministic when updated_at ties
	err := r.db.WithContext(ctx).
		Order("updated_at " + direction).
		Order("created_at").
		Order("id").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *gormFileRepository) Update(ctx context.Context, file *models.File) error {
	return r.db.WithContext(ctx).Save(file).Error
}

func (r *gormFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.File{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
