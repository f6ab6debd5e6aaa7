package services

import (
	"context"

	"vault-api/internal/models"
	"vault-api/internal/repository"

	"github.com/google/uuid"
)

// QueryService composes ordering and type filtering over file listings
type QueryService struct {
	files repository.FileRepository
}

// NewQueryService creates a new query service instance
func NewQueryService(files repository.FileRepository) *QueryService {
	return &QueryService{files: files}
}

// ListAll returns every record, narrowed to the given types when the
// filter is non-empty. Order is the repository's natural order.
func (s *QueryService) ListAll(ctx context.Context, types []string) ([]models.File, error) {
	if len(types) > 0 {
		return s.files.FindByTypes(ctx, types)
	}
	return s.files.FindAll(ctx)
}

// SortByModified returns every record ordered by modification time
func (s *QueryService) SortByModified(ctx context.Context, ascending bool) ([]models.File, error) {
	return s.files.FindAllOrderedByModified(ctx, ascending)
}

// FilterByType keeps records whose type is in the given set. An empty
// filter passes the input through unchanged.
func (s *QueryService) FilterByType(files []models.File, types []string) []models.File {
	if len(types) == 0 {
		return files
	}

	typeSet := make(map[string]struct{}, len(types))
	for _, t := range types {
		typeSet[t] = struct{}{}
	}

	filtered := make([]models.File, 0, len(files))
	for _, f := range files {
		if _, ok := typeSet[f.Type]; ok {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// SortAndFilter orders all records by modification time, then applies the
// type filter
func (s *QueryService) SortAndFilter(ctx context.Context, ascending bool, types []string) ([]models.File, error) {
	sorted, err := s.SortByModified(ctx, ascending)
	if err != nil {
		return nil, err
	}
	return s.FilterByType(sorted, types), nil
}

// ListByOwner returns the records uploaded by a single owner
func (s *QueryService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.File, error) {
	return s.files.FindByOwner(ctx, ownerID)
}
