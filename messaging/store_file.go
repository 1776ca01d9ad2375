package messaging

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the send journal to disk as a JSON array.
type FileStore struct {
	path string
	mu   sync.RWMutex
	sent []Message
}

func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("store path is empty")
	}
	fs := &FileStore{path: path}
	if err := fs.load(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (f *FileStore) Append(msg Message) error {
	if msg.ID == "" {
		return errors.New("message ID is empty")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	sent := append(f.sent, msg)
	if err := f.save(sent); err != nil {
		return err
	}
	f.sent = sent
	return nil
}

func (f *FileStore) List() ([]Message, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Message, len(f.sent))
	copy(out, f.sent)
	return out, nil
}

func (f *FileStore) load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &f.sent); err != nil {
		return fmt.Errorf("failed to parse history %s: %w", f.path, err)
	}
	return nil
}

// save replaces the history file with sent. The new contents are written to a
// temp file next to it and renamed into place, so a crash mid-write leaves the
// previous journal intact.
func (f *FileStore) save(sent []Message) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	file, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := file.Name()
	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err = enc.Encode(sent); err != nil {
		_ = file.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err = file.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err = os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
