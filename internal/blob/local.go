package blob

import (
	"context"
	"errors"
	"sync"
)

var ErrObjectNotFound = errors.New("object not found")

// LocalStore keeps blobs in process memory. Development fallback when S3 is
// not configured; objects vanish on restart and presigned URLs are not
// available.
type LocalStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewLocalStore creates an empty LocalStore
func NewLocalStore() *LocalStore {
	return &LocalStore{objects: make(map[string][]byte)}
}

func (s *LocalStore) PutObject(ctx context.Context, key string, data []byte, contentType string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf
	return int64(len(data)), nil
}

func (s *LocalStore) GetObject(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, exists := s.objects[key]
	if !exists {
		return nil, ErrObjectNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// PresignGet is not supported locally; callers treat an empty URL as
// "serve the bytes yourself".
func (s *LocalStore) PresignGet(ctx context.Context, key string, ttlSeconds int) (string, error) {
	return "", nil
}

func (s *LocalStore) DeleteObject(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}
