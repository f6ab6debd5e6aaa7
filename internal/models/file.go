package models

import (
	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-database/sql"
)

// File represents a stored file record. The owner is the principal that
// originally uploaded the file and never changes; the editor tracks the most
// recent writer. Names are unique per owner, not globally, so the storage key
// is derived from both the owner and the name.
type File struct {
	sql.BaseModel
	Name       string    `json:"name" gorm:"not null;index:idx_files_owner_name"`
	Type       string    `json:"type" gorm:"index"`
	Size       int64     `json:"size" gorm:"not null"`
	StorageKey string    `json:"storageKey" gorm:"not null"`
	OwnerID    uuid.UUID `json:"ownerId" gorm:"type:uuid;index:idx_files_owner_name"`
	OwnerName  string    `json:"ownerName" gorm:"not null"`
	EditorID   uuid.UUID `json:"editorId" gorm:"type:uuid"`
	EditorName string    `json:"editorName" gorm:"not null"`
}
