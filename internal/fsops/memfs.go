package fsops

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// MemFS is an in-memory FS for tests. It is safe for concurrent use.
type MemFS struct {
	mu    sync.RWMutex
	files map[string]memFile
	dirs  map[string]bool
}

type memFile struct {
	data    []byte
	modTime time.Time
}

// NewMemFS creates an empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string]memFile),
		dirs:  make(map[string]bool),
	}
}

// WriteFile stores data at path with the given modification time.
func (m *MemFS) WriteFile(path string, data []byte, modTime time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = memFile{data: append([]byte(nil), data...), modTime: modTime}
}

// Stat returns file info for a stored file or directory.
func (m *MemFS) Stat(path string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	path = filepath.Clean(path)
	if f, ok := m.files[path]; ok {
		return memInfo{name: filepath.Base(path), size: int64(len(f.data)), modTime: f.modTime}, nil
	}
	if m.dirs[path] {
		return memInfo{name: filepath.Base(path), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

// Exists checks if a file or directory is stored at path.
func (m *MemFS) Exists(path string) (bool, error) {
	_, err := m.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// MkdirAll records path and its parents as directories.
func (m *MemFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		m.dirs[p] = true
		if filepath.Dir(p) == p {
			return nil
		}
	}
}

// ReadFile returns a copy of the stored data.
func (m *MemFS) ReadFile(path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), f.data...), nil
}

// AtomicWrite stores data at path with a zero modification time.
func (m *MemFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	m.WriteFile(path, data, time.Time{})
	return nil
}

type memInfo struct {
	name    string
	size    int64
	modTime time.Time
	dir     bool
}

func (i memInfo) Name() string       { return i.name }
func (i memInfo) Size() int64        { return i.size }
func (i memInfo) ModTime() time.Time { return i.modTime }
func (i memInfo) IsDir() bool        { return i.dir }
func (i memInfo) Sys() interface{}   { return nil }

func (i memInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0755
	}
	return 0644
}
