package services

import (
	"context"

	"vault-api/internal/models"
)

// CompareResult is the bidirectional diff between a client's local file
// set and the vault's corpus
type CompareResult struct {
	ToUpload   []string `json:"toUpload"`
	ToDownload []string `json:"toDownload"`
}

// SyncService reconciles a client-supplied file-name set against the whole
// vault. The comparison is deliberately unscoped: the sync client diffs
// against every owner's files, not just the caller's.
type SyncService struct {
	query *QueryService
}

// NewSyncService creates a new sync service instance
func NewSyncService(query *QueryService) *SyncService {
	return &SyncService{query: query}
}

// Compare computes the names the client should upload (local names absent
// remotely, in input order) and the names it should download (remote names
// absent locally, in listing order). Neither side is deduplicated.
func (s *SyncService) Compare(ctx context.Context, localNames []string) (*CompareResult, error) {
	remote, err := s.query.ListAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	remoteSet := make(map[string]struct{}, len(remote))
	for _, f := range remote {
		remoteSet[f.Name] = struct{}{}
	}

	localSet := make(map[string]struct{}, len(localNames))
	for _, name := range localNames {
		localSet[name] = struct{}{}
	}

	toUpload := make([]string, 0)
	for _, name := range localNames {
		if _, ok := remoteSet[name]; !ok {
			toUpload = append(toUpload, name)
		}
	}

	toDownload := make([]string, 0)
	for _, f := range remote {
		if _, ok := localSet[f.Name]; !ok {
			toDownload = append(toDownload, f.Name)
		}
	}

	return &CompareResult{ToUpload: toUpload, ToDownload: toDownload}, nil
}

// RemoteFiles returns the full remote corpus for the sync client
func (s *SyncService) RemoteFiles(ctx context.Context) ([]models.File, error) {
	return s.query.ListAll(ctx, nil)
}
