package memory

import (
	"fmt"
	"sync"

	"github.com/vladislavdragonenkov/ois/internal/domain"
)

const defaultBucket = "mock-bucket"

type storedObject struct {
	data        []byte
	contentType string
}

// fileStoreInMemory — in-memory реализация FileStore. Ссылки-локации имеют
// ту же форму, что и у настоящего бакета, поэтому извлечение ключа из URL
// работает одинаково с обеими реализациями.
type fileStoreInMemory struct {
	mu     sync.RWMutex
	bucket string
	files  map[string]storedObject
}

// NewFileStore возвращает in-memory файловое хранилище.
func NewFileStore(bucket string) domain.FileStore {
	if bucket == "" {
		bucket = defaultBucket
	}
	return &fileStoreInMemory{
		bucket: bucket,
		files:  make(map[string]storedObject),
	}
}

func (s *fileStoreInMemory) Put(key string, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Храним копию, чтобы вызывающий не мог мутировать содержимое задним числом.
	buf := make([]byte, len(data))
	copy(buf, data)
	s.files[key] = storedObject{data: buf, contentType: contentType}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}

func (s *fileStoreInMemory) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.files[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, key)
	}

	buf := make([]byte, len(obj.data))
	copy(buf, obj.data)
	return buf, nil
}

var _ domain.FileStore = (*fileStoreInMemory)(nil)
