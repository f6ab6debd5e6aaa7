package services

import "errors"

// Error kinds returned by the vault services. Handlers discriminate with
// errors.Is and map each kind to a response; the services themselves never
// format or log.
var (
	// ErrNotFound means no file record exists for the requested id
	ErrNotFound = errors.New("file not found")

	// ErrDuplicateName means the owner already has a file with that exact name
	ErrDuplicateName = errors.New("file with this name already exists")

	// ErrAccessDenied means the requester is not the owner of the record
	ErrAccessDenied = errors.New("access denied")

	// ErrStorageWrite means the content store failed to accept the bytes
	ErrStorageWrite = errors.New("failed to write file content")

	// ErrStorageRead means the content store could not produce the bytes
	// for an existing record
	ErrStorageRead = errors.New("failed to read file content")

	// ErrUsernameTaken means the requested username is already registered
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers unknown usernames and wrong passwords
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken means the bearer token failed verification
	ErrInvalidToken = errors.New("invalid token")
)
