package storage

import (
	"errors"
)

// ObjectStore uploads a photo and returns its public URL.
type ObjectStore interface {
	Upload(name, contentType string, data []byte) (string, error)
}

type disabledStore struct{}

// Disabled stands in when no object store is configured. Uploads fail, which
// the submission pipeline absorbs as a best-effort miss.
func Disabled() ObjectStore {
	return disabledStore{}
}

func (disabledStore) Upload(name, contentType string, data []byte) (string, error) {
	return "", errors.New("object storage not configured")
}
