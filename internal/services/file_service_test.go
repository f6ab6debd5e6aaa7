package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"vault-api/internal/config"
	"vault-api/internal/repository"
	"vault-api/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore simulates content-store outages
type failingStore struct {
	failPut    bool
	failGet    bool
	failDelete bool
	inner      *storage.MemoryStore
}

func newFailingStore() *failingStore {
	return &failingStore{inner: storage.NewMemoryStore()}
}

func (s *failingStore) Put(ctx context.Context, key string, data []byte) error {
	if s.failPut {
		return errors.New("disk full")
	}
	return s.inner.Put(ctx, key, data)
}

func (s *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.failGet {
		return nil, errors.New("disk unreadable")
	}
	return s.inner.Get(ctx, key)
}

func (s *failingStore) Delete(ctx context.Context, key string) error {
	if s.failDelete {
		return errors.New("disk unwritable")
	}
	return s.inner.Delete(ctx, key)
}

func newTestFileService() (*FileService, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	svc := NewFileService(repository.NewMemoryFileRepository(), store, config.ValidationConfig{})
	return svc, store
}

func TestUploadDerivesTypeAndIdentity(t *testing.T) {
	svc, _ := newTestFileService()
	ctx := context.Background()
	owner := uuid.New()

	record, err := svc.Upload(ctx, []byte("hello"), "doc.kt", 5, owner, "alice")
	require.NoError(t, err)

	assert.Equal(t, "doc.kt", record.Name)
	assert.Equal(t, "kt", record.Type)
	assert.Equal(t, int64(5), record.Size)
	assert.Equal(t, owner, record.OwnerID)
	assert.Equal(t, owner, record.EditorID)
	assert.Equal(t, "alice", record.OwnerName)
	assert.Equal(t, "alice", record.EditorName)
	assert.Equal(t, owner.String()+"_doc.kt", record.StorageKey)
	assert.NotEqual(t, uuid.Nil, record.ID)
}

func TestUploadNoExtension(t *testing.T) {
	svc, _ := newTestFileService()
	owner := uuid.New()

	record, err := svc.Upload(context.Background(), []byte("x"), "README", 1, owner, "alice")
	require.NoError(t, err)
	assert.Equal(t, "", record.Type)

	record, err = svc.Upload(context.Background(), []byte("x"), ".bashrc", 1, owner, "alice")
	require.NoError(t, err)
	assert.Equal(t, "", record.Type)
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	svc, _ := newTestFileService()
	ctx := context.Background()

	content := []byte("round trip payload")
	record, err := svc.Upload(ctx, content, "data.bin", int64(len(content)), uuid.New(), "alice")
	require.NoError(t, err)

	got, err := svc.Download(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestUploadDuplicateNameIsOwnerScoped(t *testing.T) {
	svc, _ := newTestFileService()
	ctx := context.Background()
	owner1 := uuid.New()
	owner2 := uuid.New()

	_, err := svc.Upload(ctx, []byte("hello"), "doc.kt", 5, owner1, "alice")
	require.NoError(t, err)

	// Same owner, same name
	_, err = svc.Upload(ctx, []byte("again"), "doc.kt", 5, owner1, "alice")
	assert.ErrorIs(t, err, ErrDuplicateName)

	// Different owner, same name
	record, err := svc.Upload(ctx, []byte("hello"), "doc.kt", 5, owner2, "bob")
	require.NoError(t, err)
	assert.Equal(t, owner2, record.OwnerID)

	// Different case is a different name
	_, err = svc.Upload(ctx, []byte("hello"), "Doc.kt", 5, owner1, "alice")
	require.NoError(t, err)
}

func TestUploadStorageFailureLeavesNoMetadata(t *testing.T) {
	store := newFailingStore()
	store.failPut = true
	svc := NewFileService(repository.NewMemoryFileRepository(), store, config.ValidationConfig{})

	_, err := svc.Upload(context.Background(), []byte("x"), "doc.kt", 1, uuid.New(), "alice")
	assert.ErrorIs(t, err, ErrStorageWrite)

	files, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDownloadErrors(t *testing.T) {
	svc, store := newTestFileService()
	ctx := context.Background()

	_, err := svc.Download(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	record, err := svc.Upload(ctx, []byte("x"), "doc.kt", 1, uuid.New(), "alice")
	require.NoError(t, err)

	// Bytes vanished underneath the record: a storage read failure, not a
	// metadata miss
	require.NoError(t, store.Delete(ctx, record.StorageKey))
	_, err = svc.Download(ctx, record.ID)
	assert.ErrorIs(t, err, ErrStorageRead)
}

func TestUpdateReplacesContentAndTracksEditor(t *testing.T) {
	svc, store := newTestFileService()
	ctx := context.Background()
	owner := uuid.New()
	editor := uuid.New()

	record, err := svc.Upload(ctx, []byte("hello"), "doc.kt", 5, owner, "alice")
	require.NoError(t, err)
	oldKey := record.StorageKey
	createdAt := record.CreatedAt
	modifiedAt := record.UpdatedAt

	time.Sleep(5 * time.Millisecond)

	updated, err := svc.Update(ctx, record.ID, []byte("new bytes"), "renamed.jpg", 9, editor, "bob")
	require.NoError(t, err)

	assert.Equal(t, "renamed.jpg", updated.Name)
	assert.Equal(t, "jpg", updated.Type)
	assert.Equal(t, int64(9), updated.Size)
	assert.Equal(t, editor, updated.EditorID)
	assert.Equal(t, "bob", updated.EditorName)

	// Owner, creation time and id never change
	assert.Equal(t, owner, updated.OwnerID)
	assert.Equal(t, "alice", updated.OwnerName)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.Equal(t, record.ID, updated.ID)
	assert.True(t, updated.UpdatedAt.After(modifiedAt))

	// Storage key namespace stays with the owner, not the editor
	assert.Equal(t, owner.String()+"_renamed.jpg", updated.StorageKey)

	_, err = store.Get(ctx, oldKey)
	assert.Error(t, err)

	got, err := svc.Download(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("new bytes"), got)
}

func TestUpdateSameNameKeepsKey(t *testing.T) {
	svc, _ := newTestFileService()
	ctx := context.Background()
	owner := uuid.New()

	record, err := svc.Upload(ctx, []byte("v1"), "doc.kt", 2, owner, "alice")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, record.ID, []byte("v2"), "doc.kt", 2, owner, "alice")
	require.NoError(t, err)
	assert.Equal(t, record.StorageKey, updated.StorageKey)

	got, err := svc.Download(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestUpdateMissingFile(t *testing.T) {
	svc, _ := newTestFileService()

	_, err := svc.Update(context.Background(), uuid.New(), []byte("x"), "doc.kt", 1, uuid.New(), "bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStorageFailure(t *testing.T) {
	store := newFailingStore()
	svc := NewFileService(repository.NewMemoryFileRepository(), store, config.ValidationConfig{})
	ctx := context.Background()
	owner := uuid.New()

	record, err := svc.Upload(ctx, []byte("v1"), "doc.kt", 2, owner, "alice")
	require.NoError(t, err)

	store.failPut = true
	_, err = svc.Update(ctx, record.ID, []byte("v2"), "doc.kt", 2, owner, "alice")
	assert.ErrorIs(t, err, ErrStorageWrite)

	// Metadata still points at the original name: the record is only
	// overwritten after a successful content write
	meta, err := svc.GetMetadata(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "doc.kt", meta.Name)
}

func TestDeleteRequiresOwner(t *testing.T) {
	svc, store := newTestFileService()
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	record, err := svc.Upload(ctx, []byte("hello"), "doc.kt", 5, owner, "alice")
	require.NoError(t, err)

	err = svc.Delete(ctx, record.ID, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Record and content are untouched
	meta, err := svc.GetMetadata(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "doc.kt", meta.Name)
	_, err = store.Get(ctx, record.StorageKey)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, record.ID, owner))

	_, err = svc.GetMetadata(ctx, record.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(ctx, record.StorageKey)
	assert.Error(t, err)

	err = svc.Delete(ctx, record.ID, owner)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSucceedsWhenContentAlreadyGone(t *testing.T) {
	store := newFailingStore()
	svc := NewFileService(repository.NewMemoryFileRepository(), store, config.ValidationConfig{})
	ctx := context.Background()
	owner := uuid.New()

	record, err := svc.Upload(ctx, []byte("hello"), "doc.kt", 5, owner, "alice")
	require.NoError(t, err)

	// Content deletion is best-effort; metadata removal decides success
	store.failDelete = true
	require.NoError(t, svc.Delete(ctx, record.ID, owner))

	_, err = svc.GetMetadata(ctx, record.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidateUpload(t *testing.T) {
	svc := NewFileService(
		repository.NewMemoryFileRepository(),
		storage.NewMemoryStore(),
		config.ValidationConfig{MaxFileSizeBytes: 10},
	)

	assert.NoError(t, svc.ValidateUpload("doc.kt", 10))
	assert.Error(t, svc.ValidateUpload("doc.kt", 11))
	assert.Error(t, svc.ValidateUpload("../doc.kt", 1))
	assert.Error(t, svc.ValidateUpload("a/b.kt", 1))
	assert.Error(t, svc.ValidateUpload("", 1))
}
