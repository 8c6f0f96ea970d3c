package storage

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/modelvision/leadgen/log"
)

type supabaseStore struct {
	baseURL string
	key     string
	bucket  string
	client  *http.Client
}

// NewSupabaseStore talks to the Supabase Storage REST API. Objects land in a
// single bucket and are publicly readable through the derived URL.
func NewSupabaseStore(baseURL, key, bucket string) ObjectStore {
	return &supabaseStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		bucket:  bucket,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *supabaseStore) Upload(name, contentType string, data []byte) (string, error) {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, name)

	req, err := http.NewRequest("POST", url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error uploading object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("error from storage API: %s", string(body))
	}

	publicURL := s.publicURL(name)
	log.Debugf("storage.upload: stored %s (%d bytes)", publicURL, len(data))
	return publicURL, nil
}

func (s *supabaseStore) publicURL(name string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, name)
}
