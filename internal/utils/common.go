package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Common utilities used across the vault-api

// GetFileExtension extracts the lower-cased extension after the last dot.
// A name without a dot, or with a dot only at position zero (".bashrc"),
// has no extension.
func GetFileExtension(filename string) string {
	dotIndex := strings.LastIndex(filename, ".")
	if dotIndex <= 0 {
		return ""
	}
	return strings.ToLower(filename[dotIndex+1:])
}

// StorageKey derives the content-store key for a file. The scheme is fixed;
// external tooling inspects storage by this layout.
func StorageKey(ownerID, name string) string {
	return fmt.Sprintf("%s_%s", ownerID, name)
}

// IsSafeFilename rejects names that would escape the storage namespace
func IsSafeFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\")
}

// ParseSizeString converts human-readable size strings to bytes
func ParseSizeString(sizeStr string) (int64, error) {
	sizeStr = strings.TrimSpace(sizeStr)

	units := []struct {
		suffix string
		factor float64
	}{
		{"TB", 1024 * 1024 * 1024 * 1024},
		{"GB", 1024 * 1024 * 1024},
		{"MB", 1024 * 1024},
		{"KB", 1024},
	}

	for _, unit := range units {
		if strings.HasSuffix(sizeStr, unit.suffix) {
			value := strings.TrimSuffix(sizeStr, unit.suffix)
			if size, err := strconv.ParseFloat(value, 64); err == nil {
				return int64(size * unit.factor), nil
			}
			return 0, fmt.Errorf("invalid size format: %s", sizeStr)
		}
	}

	// Plain byte counts, with or without the B suffix
	if strings.HasSuffix(sizeStr, "B") {
		sizeStr = strings.TrimSuffix(sizeStr, "B")
	}
	if size, err := strconv.ParseInt(sizeStr, 10, 64); err == nil {
		return size, nil
	}

	return 0, fmt.Errorf("invalid size format: %s", sizeStr)
}
