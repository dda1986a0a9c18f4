package storemock

import (
	"context"
	"sync"
	"time"
)

// Store is an in-memory object store for tests. It records every upload and
// serves deterministic signed URLs.
type Store struct {
	mu      sync.Mutex
	objects map[string][]byte // bucket/path -> content

	UploadErr    error
	SignedURLErr error
}

func New() *Store { return &Store{objects: map[string][]byte{}} }

func (s *Store) Upload(_ context.Context, bucket, path string, content []byte, _ string) error {
	if s.UploadErr != nil {
		return s.UploadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+path] = content
	return nil
}

func (s *Store) SignedURL(_ context.Context, bucket, path string, _ time.Duration) (string, error) {
	if s.SignedURLErr != nil {
		return "", s.SignedURLErr
	}
	return "https://signed.example.com/" + bucket + "/" + path, nil
}

// Has reports whether an object was uploaded to bucket at path.
func (s *Store) Has(bucket, path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[bucket+"/"+path]
	return ok
}

// Count returns the number of stored objects.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
