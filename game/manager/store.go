package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ScoresKey is the namespace the score list is stored under.
const ScoresKey = "snakeScores"

// ErrPersistence wraps every failure to read or write the score store.
var ErrPersistence = errors.New("score persistence failed")

// Store reads and replaces the whole persisted score list.
type Store interface {
	Load() ([]int, error)
	Save(scores []int) error
}

// FileStore keeps namespaced lists in a single JSON document, e.g.
// {"snakeScores":[50,40,30]}. Other namespaces in the file are preserved.
type FileStore struct {
	path string
	key  string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		key:  ScoresKey,
	}
}

func (fs *FileStore) Path() string {
	return fs.path
}

func (fs *FileStore) Load() ([]int, error) {
	doc, err := fs.readDocument()
	if err != nil {
		return nil, err
	}
	raw, ok := doc[fs.key]
	if !ok {
		return []int{}, nil
	}

	var scores []int
	if err := json.Unmarshal(raw, &scores); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrPersistence, fs.key, err)
	}
	return scores, nil
}

func (fs *FileStore) Save(scores []int) error {
	doc, err := fs.readDocument()
	if err != nil {
		return err
	}

	if scores == nil {
		scores = []int{}
	}
	raw, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPersistence, fs.key, err)
	}
	doc[fs.key] = raw

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode document: %v", ErrPersistence, err)
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// Write next to the target and rename so a crash never leaves half a file.
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (fs *FileStore) readDocument() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]json.RawMessage), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	doc := make(map[string]json.RawMessage)
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrPersistence, fs.path, err)
	}
	return doc, nil
}

// MemoryStore keeps the list in memory. Fail makes every call return an error
// wrapping ErrPersistence, for exercising failure paths.
type MemoryStore struct {
	mu     sync.Mutex
	scores []int
	Fail   error
	Saves  int
}

func NewMemoryStore(scores ...int) *MemoryStore {
	return &MemoryStore{scores: append([]int{}, scores...)}
}

func (ms *MemoryStore) Load() ([]int, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.Fail != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, ms.Fail)
	}
	return append([]int{}, ms.scores...), nil
}

func (ms *MemoryStore) Save(scores []int) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.Fail != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, ms.Fail)
	}
	ms.scores = append([]int{}, scores...)
	ms.Saves++
	return nil
}
