package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFileExtension(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"simple extension", "doc.kt", "kt"},
		{"upper-cased extension", "photo.JPG", "jpg"},
		{"last dot wins", "archive.tar.gz", "gz"},
		{"no dot", "README", ""},
		{"leading dot only", ".gitignore", ""},
		{"trailing dot", "notes.", ""},
		{"leading dot with extension", ".config.yaml", "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetFileExtension(tt.filename))
		})
	}
}

func TestStorageKey(t *testing.T) {
	assert.Equal(t, "42_doc.kt", StorageKey("42", "doc.kt"))
}

func TestIsSafeFilename(t *testing.T) {
	assert.True(t, IsSafeFilename("doc.kt"))
	assert.True(t, IsSafeFilename("my file (1).txt"))

	assert.False(t, IsSafeFilename(""))
	assert.False(t, IsSafeFilename("."))
	assert.False(t, IsSafeFilename(".."))
	assert.False(t, IsSafeFilename("a/b.txt"))
	assert.False(t, IsSafeFilename("a\\b.txt"))
}

func TestParseSizeString(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1024", 1024},
		{"512B", 512},
		{"1KB", 1024},
		{"1.5KB", 1536},
		{"100MB", 100 * 1024 * 1024},
		{"2GB", 2 * 1024 * 1024 * 1024},
		{"1TB", 1024 * 1024 * 1024 * 1024},
		{" 10MB ", 10 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSizeString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseSizeString("lots")
	assert.Error(t, err)

	_, err = ParseSizeString("10XB")
	assert.Error(t, err)
}
